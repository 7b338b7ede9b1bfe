package memory

import (
	"context"
	"sync"
	"time"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

type SongRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Song
	order []string
}

func NewSongRepository() repository.SongRepository {
	return &SongRepository{
		byID: make(map[string]*domain.Song),
	}
}

func (r *SongRepository) Init(ctx context.Context) error { return nil }

func (r *SongRepository) Create(ctx context.Context, song *domain.Song) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[song.ID]; ok {
		return domain.ErrDuplicateID
	}

	stored := *song
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *SongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	song, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *song
	return &copied, nil
}

func (r *SongRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	songs := make([]domain.Song, 0)
	for _, id := range r.order {
		if song := r.byID[id]; song.OwnerID == ownerID {
			songs = append(songs, *song)
		}
	}
	return songs, nil
}

func (r *SongRepository) Update(ctx context.Context, id, title, singer string, year int, updatedAt time.Time) (*domain.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	song, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	song.Title = title
	song.Singer = singer
	song.Year = year
	song.UpdatedAt = updatedAt

	copied := *song
	return &copied, nil
}

func (r *SongRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
