package account

import (
	"context"
	"errors"

	domain "gymtrack/internal/domain/account"
)

// ErrNotFound reports a lookup for an account that does not exist.
var ErrNotFound = errors.New("account not found")

// Store persists login accounts.
type Store interface {
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	Create(ctx context.Context, a domain.Account) error
	// SaveLoginState persists the lockout counters after an attempt.
	SaveLoginState(ctx context.Context, a domain.Account) error
	// Exists reports whether any account carries the username.
	Exists(ctx context.Context, username string) (bool, error)
}
