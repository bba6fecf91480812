package account

import (
	"context"
	"time"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/account"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates an account store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

func (s *SQLStore) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT AccountId, Username, PasswordHash, Role, LinkedId, CreatedAt, FailedLogins, LockedUntil FROM Account WHERE Username = ?",
		username)
	if err != nil {
		return domain.Account{}, err
	}
	if len(rows) == 0 {
		return domain.Account{}, ErrNotFound
	}
	r := rows[0]
	return domain.Account{
		ID:           r.Int("AccountId"),
		Username:     r.String("Username"),
		PasswordHash: r.String("PasswordHash"),
		Role:         r.String("Role"),
		LinkedID:     r.Int("LinkedId"),
		CreatedAt:    r.Time("CreatedAt"),
		FailedLogins: r.Int("FailedLogins"),
		LockedUntil:  r.Time("LockedUntil"),
	}, nil
}

// Create inserts an account.
// PRE: a passed Validate and PasswordHash is set
func (s *SQLStore) Create(ctx context.Context, a domain.Account) error {
	return s.exec.Exec(ctx,
		"INSERT INTO Account (Username, PasswordHash, Role, LinkedId) VALUES (?, ?, ?, ?)",
		a.Username, a.PasswordHash, a.Role, a.LinkedID)
}

// SaveLoginState persists the lockout counters after an attempt.
func (s *SQLStore) SaveLoginState(ctx context.Context, a domain.Account) error {
	var lockedUntil any
	if !a.LockedUntil.IsZero() {
		lockedUntil = a.LockedUntil.Format(time.RFC3339)
	}
	return s.exec.Exec(ctx,
		"UPDATE Account SET FailedLogins = ?, LockedUntil = ? WHERE AccountId = ?",
		a.FailedLogins, lockedUntil, a.ID)
}

func (s *SQLStore) Exists(ctx context.Context, username string) (bool, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT 1 AS One FROM Account WHERE Username = ?", username)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
