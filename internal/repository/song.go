package repository

import (
	"context"
	"time"

	"songbox/internal/domain"
)

// SongRepository exposes store operations for Song records. List results
// preserve insertion order; display ordering is a filter concern, not a
// store concern.
type SongRepository interface {
	Init(ctx context.Context) error
	// Create inserts the song. It returns domain.ErrDuplicateID if the id is
	// already present.
	Create(ctx context.Context, song *domain.Song) error
	// GetByID returns domain.ErrNotFound if no song has the id.
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	// ListByOwner returns all songs with the given owner id, insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Song, error)
	// Update replaces exactly title, singer, year and updatedAt; id, owner
	// and createdAt are immutable. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, id, title, singer string, year int, updatedAt time.Time) (*domain.Song, error)
	// Delete removes the song, reporting whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
