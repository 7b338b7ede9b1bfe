package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

func openTestDB(t *testing.T) (repository.AccountRepository, repository.SongRepository) {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	accounts := NewAccountRepository(db)
	songs := NewSongRepository(db)
	require.NoError(t, accounts.Init(context.Background()))
	require.NoError(t, songs.Init(context.Background()))
	return accounts, songs
}

func seedAccount(t *testing.T, accounts repository.AccountRepository, id, email string) {
	t.Helper()
	require.NoError(t, accounts.Create(context.Background(), &domain.Account{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}))
}

func seedSong(t *testing.T, songs repository.SongRepository, id, title, owner string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, songs.Create(context.Background(), &domain.Song{
		ID:        id,
		Title:     title,
		Singer:    "Singer",
		Year:      1990,
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func TestAccountRepositoryRoundTrip(t *testing.T) {
	accounts, _ := openTestDB(t)
	ctx := context.Background()

	seedAccount(t, accounts, "a1", "alice@example.com")

	account, err := accounts.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a1", account.ID)
	assert.Equal(t, "Test User", account.Name)

	_, err = accounts.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepositoryConflicts(t *testing.T) {
	accounts, _ := openTestDB(t)
	ctx := context.Background()

	seedAccount(t, accounts, "a1", "alice@example.com")

	err := accounts.Create(ctx, &domain.Account{
		ID: "a2", Name: "n", Email: "alice@example.com",
		PasswordHash: "h", CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrEmailConflict)

	err = accounts.Create(ctx, &domain.Account{
		ID: "a1", Name: "n", Email: "fresh@example.com",
		PasswordHash: "h", CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestSongRepositoryListByOwnerInsertionOrder(t *testing.T) {
	accounts, songs := openTestDB(t)
	ctx := context.Background()

	seedAccount(t, accounts, "alice", "alice@example.com")
	seedAccount(t, accounts, "bob", "bob@example.com")
	seedSong(t, songs, "s1", "Zebra", "alice")
	seedSong(t, songs, "s2", "Apple", "alice")
	seedSong(t, songs, "s3", "Other", "bob")

	owned, err := songs.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Zebra", owned[0].Title)
	assert.Equal(t, "Apple", owned[1].Title)
}

func TestSongRepositoryUpdateAndDelete(t *testing.T) {
	accounts, songs := openTestDB(t)
	ctx := context.Background()

	seedAccount(t, accounts, "alice", "alice@example.com")
	seedSong(t, songs, "s1", "Before", "alice")

	updated, err := songs.Update(ctx, "s1", "After", "New Singer", 2001, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "New Singer", updated.Singer)
	assert.Equal(t, 2001, updated.Year)
	assert.Equal(t, "alice", updated.OwnerID)

	_, err = songs.Update(ctx, "missing", "x", "y", 2000, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err := songs.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = songs.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = songs.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSongRepositoryCreateRejectsDuplicateID(t *testing.T) {
	accounts, songs := openTestDB(t)

	seedAccount(t, accounts, "alice", "alice@example.com")
	seedSong(t, songs, "s1", "First", "alice")

	err := songs.Create(context.Background(), &domain.Song{
		ID: "s1", Title: "Second", Singer: "S", Year: 1990,
		OwnerID: "alice", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}
