package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymtrack/internal/domain/account"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/metrics"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (account.Account, error)
	SaveLoginState(ctx context.Context, a account.Account) error
}

// LoginDisplayNameStore resolves the linked record's display name.
type LoginDisplayNameStore interface {
	DisplayName(ctx context.Context, role string, linkedID int) string
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	Principal identity.Principal
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
	Names        LoginDisplayNameStore // optional: nil falls back to the username
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
)

// ExecuteLogin validates credentials and returns the principal for session
// creation.
// PRE: Valid username and password provided
// POST: Returns the principal on success, records failed login on failure
// INVARIANT: Account must not be locked
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByUsername(ctx, input.Username)
	if err != nil {
		metrics.LoginFailures.Inc()
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if acct.IsLocked() {
		slog.Info("auth_event", "event", "login_blocked", "username", input.Username, "reason", "locked")
		return LoginResult{}, ErrAccountLocked
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		acct.RecordFailedLogin()
		_ = deps.AccountStore.SaveLoginState(ctx, acct)
		metrics.LoginFailures.Inc()
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password", "failed_logins", acct.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	acct.ResetFailedLogins()
	_ = deps.AccountStore.SaveLoginState(ctx, acct)

	displayName := ""
	if deps.Names != nil {
		displayName = deps.Names.DisplayName(ctx, acct.Role, acct.LinkedID)
	}

	slog.Info("auth_event", "event", "login_success", "username", input.Username, "role", acct.Role)

	return LoginResult{Principal: acct.Principal(displayName)}, nil
}
