package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbox/internal/domain"
)

func newAccount(id, email string) *domain.Account {
	return &domain.Account{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAccountRepositoryCreateAndLookup(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("a1", "alice@example.com")))

	byID, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a1", byEmail.ID)
}

func TestAccountRepositoryCreateConflicts(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("a1", "alice@example.com")))

	err := repo.Create(ctx, newAccount("a1", "other@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	err = repo.Create(ctx, newAccount("a2", "alice@example.com"))
	assert.ErrorIs(t, err, domain.ErrEmailConflict)
}

func TestAccountRepositoryMissing(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
