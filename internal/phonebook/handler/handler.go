// Package handler wires the phone book endpoints. Handlers decode, delegate
// to the service, and render the legacy JSON contract; business logic stays in
// the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"phonebook/internal/phonebook/models"
	"phonebook/internal/phonebook/store"
	dErrors "phonebook/pkg/domain-errors"
	"phonebook/pkg/platform/httputil"
	"phonebook/pkg/requestcontext"
)

// Service defines the phone book operations the handler depends on.
type Service interface {
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, query store.ListQuery) ([]*models.Item, int, error)
	Create(ctx context.Context, fields models.Fields) (*models.Item, error)
	Update(ctx context.Context, id int64, fields models.Fields) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}

// Handler wires phone book endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a phone book handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the phone book endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/phoneBook/items", h.HandleList)
	r.Get("/phoneBook/items/{id}", h.HandleView)
	r.Post("/phoneBook/items", h.HandleCreate)
	r.Put("/phoneBook/items/{id}", h.HandleUpdate)
	r.Delete("/phoneBook/items/{id}", h.HandleDelete)
}

// writeFailure renders an error per the legacy contract: business-rule
// failures answer HTTP 200 with a fail envelope, unexpected errors answer 500
// with a generic message.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	code := dErrors.CodeOf(err)
	requestID := requestcontext.RequestID(r.Context())

	switch code {
	case dErrors.CodeValidation, dErrors.CodeDuplicate, dErrors.CodeNotFound,
		dErrors.CodeBadRequest, dErrors.CodeReferenceUnavailable:
		level := slog.LevelWarn
		if code == dErrors.CodeReferenceUnavailable {
			// Upstream trouble, not a client mistake.
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "request rejected",
			"request_id", requestID,
			"reason", string(code),
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusOK, failEnvelope(dErrors.MessageOf(err)))
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, failEnvelope("Internal server error."))
	}
}

func itemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "The item id must be an integer.")
	}
	return id, nil
}

// HandleList handles GET /phoneBook/items.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := listQueryFromRequest(r).Normalize()

	items, total, err := h.service.List(r.Context(), query)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toListResponse(items, total, query))
}

// HandleView handles GET /phoneBook/items/{id}.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, viewResponse{Data: toResource(item)})
}

// HandleCreate handles POST /phoneBook/items.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.fields())
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "item created",
		"request_id", requestcontext.RequestID(r.Context()),
		"item_id", created.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, successEnvelope("The item has been successfully created."))
}

// HandleUpdate handles PUT /phoneBook/items/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	var req itemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.fields())
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "item updated",
		"request_id", requestcontext.RequestID(r.Context()),
		"item_id", updated.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, successEnvelope("The item has been successfully updated."))
}

// HandleDelete handles DELETE /phoneBook/items/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "item deleted",
		"request_id", requestcontext.RequestID(r.Context()),
		"item_id", id,
	)
	httputil.WriteJSON(w, http.StatusOK, successEnvelope("The item has been successfully deleted."))
}
