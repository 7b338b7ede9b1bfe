package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

// SongService coordinates ownership-scoped CRUD over song records. Every
// operation takes the caller's account id; an empty id fails with
// domain.ErrUnauthenticated before anything else is checked.
type SongService interface {
	ListOwned(ctx context.Context, callerID string) ([]domain.Song, error)
	GetOwned(ctx context.Context, callerID, songID string) (*domain.Song, error)
	Create(ctx context.Context, callerID, title, singer string, year int) (*domain.Song, error)
	Update(ctx context.Context, callerID, songID, title, singer string, year int) (*domain.Song, error)
	Delete(ctx context.Context, callerID, songID string) error
}

type songService struct {
	songs repository.SongRepository
}

func NewSongService(songs repository.SongRepository) SongService {
	return &songService{songs: songs}
}

func (s *songService) ListOwned(ctx context.Context, callerID string) ([]domain.Song, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.songs.ListByOwner(ctx, callerID)
}

func (s *songService) GetOwned(ctx context.Context, callerID, songID string) (*domain.Song, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.getOwned(ctx, callerID, songID)
}

func (s *songService) Create(ctx context.Context, callerID, title, singer string, year int) (*domain.Song, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	title, singer, err := validateSongFields(title, singer, year)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	song := &domain.Song{
		ID:        uuid.NewString(),
		Title:     title,
		Singer:    singer,
		Year:      year,
		OwnerID:   callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songService) Update(ctx context.Context, callerID, songID, title, singer string, year int) (*domain.Song, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	if _, err := s.getOwned(ctx, callerID, songID); err != nil {
		return nil, err
	}

	title, singer, err := validateSongFields(title, singer, year)
	if err != nil {
		return nil, err
	}

	return s.songs.Update(ctx, songID, title, singer, year, time.Now().UTC())
}

func (s *songService) Delete(ctx context.Context, callerID, songID string) error {
	if callerID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.getOwned(ctx, callerID, songID); err != nil {
		return err
	}

	removed, err := s.songs.Delete(ctx, songID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: delete removed no record for id %s", domain.ErrInternal, songID)
	}
	return nil
}

// getOwned checks existence before ownership so the two failure modes stay
// distinguishable.
func (s *songService) getOwned(ctx context.Context, callerID, songID string) (*domain.Song, error) {
	song, err := s.songs.GetByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if song.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	return song, nil
}

func validateSongFields(title, singer string, year int) (string, string, error) {
	title = strings.TrimSpace(title)
	singer = strings.TrimSpace(singer)

	if title == "" || singer == "" || year == 0 {
		return "", "", domain.Validationf("title, singer and year are required")
	}
	if year < domain.MinYear || year > time.Now().Year() {
		return "", "", domain.ErrInvalidYear
	}
	return title, singer, nil
}
