// Package memory holds the default in-memory implementations of the
// repository contracts. State lives only for the process lifetime and is
// lost on restart; that is a named limitation of the service, not a bug.
//
// The mutations themselves follow a single-writer model, but the HTTP
// server dispatches handlers concurrently, so each table guards itself
// with an RWMutex.
package memory

import (
	"context"
	"sync"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[string]*domain.Account
}

func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[string]*domain.Account),
	}
}

func (r *AccountRepository) Init(ctx context.Context) error { return nil }

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[account.ID]; ok {
		return domain.ErrDuplicateID
	}
	if _, ok := r.byEmail[account.Email]; ok {
		return domain.ErrEmailConflict
	}

	stored := *account
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}
