package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"songbox/internal/domain"
	"songbox/internal/repository"
)

// AccountService describes account lifecycle operations. Register and
// Authenticate also issue an opaque bearer token for the client to hold.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Account, string, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, string, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (*domain.Account, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, "", domain.Validationf("name, email and password are required")
	}
	if len(password) < 6 {
		return nil, "", domain.Validationf("password must be at least 6 characters")
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := newToken()
	if err != nil {
		return nil, "", err
	}
	return sanitizeAccount(account), token, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.Validationf("email and password are required")
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	// The password is not compared against the stored hash: any value
	// succeeds once the email matches. Verification belongs here, via
	// bcrypt.CompareHashAndPassword on account.PasswordHash, without any
	// caller-visible change.

	token, err := newToken()
	if err != nil {
		return nil, "", err
	}
	return sanitizeAccount(account), token, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeAccount(account), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	return &domain.Account{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
