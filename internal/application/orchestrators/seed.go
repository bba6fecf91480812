package orchestrators

import (
	"context"
	"log/slog"

	"gymtrack/internal/domain/account"
	"gymtrack/internal/domain/identity"
)

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountWriteStore
}

// ExecuteSeedAdmin creates the bootstrap admin account on first start.
// Idempotent: an existing account with the username is left untouched.
// PRE: username and password come from configuration, not user input
// POST: An admin account with the username exists
func ExecuteSeedAdmin(ctx context.Context, username, password string, deps SeedAdminDeps) error {
	exists, err := deps.AccountStore.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	a := account.Account{
		Username: username,
		Role:     identity.RoleAdmin,
	}
	if err := a.SetPassword(password); err != nil {
		return err
	}
	if err := deps.AccountStore.Create(ctx, a); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "admin_seeded", "username", username)
	return nil
}
