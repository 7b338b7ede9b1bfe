package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbox/internal/domain"
)

func newSong(id, title, owner string) *domain.Song {
	now := time.Now().UTC()
	return &domain.Song{
		ID:        id,
		Title:     title,
		Singer:    "Singer",
		Year:      1990,
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSongRepositoryCreateRejectsDuplicateID(t *testing.T) {
	repo := NewSongRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSong("s1", "First", "owner")))
	err := repo.Create(ctx, newSong("s1", "Second", "owner"))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestSongRepositoryListByOwnerPreservesInsertionOrder(t *testing.T) {
	repo := NewSongRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSong("s1", "Zebra", "alice")))
	require.NoError(t, repo.Create(ctx, newSong("s2", "Apple", "alice")))
	require.NoError(t, repo.Create(ctx, newSong("s3", "Other", "bob")))

	songs, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, "Zebra", songs[0].Title)
	assert.Equal(t, "Apple", songs[1].Title)
}

func TestSongRepositoryGetByIDMissing(t *testing.T) {
	repo := NewSongRepository()

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSongRepositoryUpdateTouchesOnlyMutableFields(t *testing.T) {
	repo := NewSongRepository()
	ctx := context.Background()

	original := newSong("s1", "Before", "alice")
	require.NoError(t, repo.Create(ctx, original))

	later := original.UpdatedAt.Add(time.Second)
	updated, err := repo.Update(ctx, "s1", "After", "New Singer", 2001, later)
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "New Singer", updated.Singer)
	assert.Equal(t, 2001, updated.Year)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.OwnerID, updated.OwnerID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	_, err = repo.Update(ctx, "missing", "x", "y", 2000, later)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSongRepositoryDelete(t *testing.T) {
	repo := NewSongRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSong("s1", "Gone", "alice")))

	removed, err := repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err = repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSongRepositoryReturnsCopies(t *testing.T) {
	repo := NewSongRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSong("s1", "Stable", "alice")))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.Title = "Mutated"

	again, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Stable", again.Title)
}
