package store

// Error Contract:
// All store methods follow this error pattern:
// - Return sentinel.ErrNotFound (wrapped) when the requested item does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

import (
	"context"

	"phonebook/internal/phonebook/models"
)

const (
	// DefaultLimit is applied when a list request carries no limit.
	DefaultLimit = 50
	// MaxLimit caps the page size regardless of what the client asks for.
	MaxLimit = 100
)

// ListQuery describes a paginated, optionally filtered listing.
type ListQuery struct {
	// SearchPhrase, when non-empty, matches items whose first or last name
	// contains it (case-insensitive).
	SearchPhrase string
	Limit        int
	Offset       int
}

// Normalize clamps pagination parameters to sane bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Store owns persisted phone book items.
type Store interface {
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	// FindByNameAndPhone is used for duplicate detection on create and
	// conflict detection on update.
	FindByNameAndPhone(ctx context.Context, firstName, phoneNumber string) (*models.Item, error)
	// List returns one page of items plus the total count of matches.
	List(ctx context.Context, query ListQuery) ([]*models.Item, int, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}
