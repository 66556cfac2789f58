// Package service orchestrates phone book operations: payload validation,
// duplicate detection, and persistence. Handlers stay thin; every business
// rule lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"phonebook/internal/phonebook/metrics"
	"phonebook/internal/phonebook/models"
	"phonebook/internal/phonebook/store"
	"phonebook/internal/phonebook/validation"
	dErrors "phonebook/pkg/domain-errors"
	"phonebook/pkg/platform/sentinel"
	"phonebook/pkg/requestcontext"
)

// Validator checks an item payload, returning content violations separately
// from reference-data availability failures.
type Validator interface {
	Validate(ctx context.Context, fields models.Fields) (validation.Violations, error)
}

// Service implements the phone book use cases over a Store.
type Service struct {
	store     store.Store
	validator Validator
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New constructs a Service with its dependencies.
func New(itemStore store.Store, validator Validator, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:     itemStore,
		validator: validator,
		logger:    logger,
		metrics:   m,
	}
}

func notFoundError(id int64) *dErrors.Error {
	return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("There is no item found with id: %d", id))
}

// Get returns a single item by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, notFoundError(id)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns one page of items plus the total match count.
func (s *Service) List(ctx context.Context, query store.ListQuery) ([]*models.Item, int, error) {
	items, total, err := s.store.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// validate runs the field rules and translates the two failure categories into
// their domain errors.
func (s *Service) validate(ctx context.Context, fields models.Fields) error {
	violations, err := s.validator.Validate(ctx, fields)
	if err != nil {
		// Upstream reference data unreachable: reject, but tag distinctly so
		// the handler can log it as an availability problem.
		s.logger.ErrorContext(ctx, "reference data unavailable",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return dErrors.Wrap(dErrors.CodeReferenceUnavailable,
			"The reference data required for validation is currently unavailable. Please retry.", err)
	}
	if len(violations) > 0 {
		s.metrics.ValidationFailures.Inc()
		return dErrors.New(dErrors.CodeValidation, violations.Summary())
	}
	return nil
}

// Create validates the payload, rejects duplicates, and persists a new item
// with insertedOn = updatedOn = now.
func (s *Service) Create(ctx context.Context, fields models.Fields) (*models.Item, error) {
	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}

	_, err := s.store.FindByNameAndPhone(ctx, fields.FirstName, fields.PhoneNumber)
	if err == nil {
		return nil, dErrors.New(dErrors.CodeDuplicate, "The phone book item is already exists")
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	now := requestcontext.Now(ctx)
	item := &models.Item{
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		PhoneNumber: fields.PhoneNumber,
		CountryCode: fields.CountryCode,
		TimeZone:    fields.TimeZone,
		InsertedOn:  now,
		UpdatedOn:   now,
	}

	created, err := s.store.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.metrics.ItemsCreated.Inc()
	return created, nil
}

// Update validates the payload, rejects conflicts with other items, and
// persists the changes with a fresh updatedOn. InsertedOn is never touched.
func (s *Service) Update(ctx context.Context, id int64, fields models.Fields) (*models.Item, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, notFoundError(id)
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}

	conflict, err := s.store.FindByNameAndPhone(ctx, fields.FirstName, fields.PhoneNumber)
	if err == nil && conflict.ID != id {
		return nil, dErrors.New(dErrors.CodeDuplicate,
			"The phone book item with the first name and phone number is already exists.")
	}
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check conflict: %w", err)
	}

	existing.FirstName = fields.FirstName
	existing.LastName = fields.LastName
	existing.PhoneNumber = fields.PhoneNumber
	existing.CountryCode = fields.CountryCode
	existing.TimeZone = fields.TimeZone
	existing.UpdatedOn = requestcontext.Now(ctx)

	updated, err := s.store.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, notFoundError(id)
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	s.metrics.ItemsUpdated.Inc()
	return updated, nil
}

// Delete removes an item. Deleting an unknown id is NotFound; a second delete
// of the same id reports the same, never a crash.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return notFoundError(id)
		}
		return fmt.Errorf("delete item: %w", err)
	}
	s.metrics.ItemsDeleted.Inc()
	return nil
}
