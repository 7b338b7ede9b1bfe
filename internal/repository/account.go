package repository

import (
	"context"

	"songbox/internal/domain"
)

// AccountRepository defines store operations for Account entities. Emails
// are expected to arrive already normalized (trimmed, lowercased).
type AccountRepository interface {
	Init(ctx context.Context) error
	// Create inserts the account. It returns domain.ErrDuplicateID if the id
	// is already present and domain.ErrEmailConflict if the email is taken.
	Create(ctx context.Context, account *domain.Account) error
	// GetByID returns domain.ErrNotFound if no account has the id.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByEmail returns domain.ErrNotFound if no account has the email.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
