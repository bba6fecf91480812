package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymtrack/internal/domain/account"
	"gymtrack/internal/domain/identity"
)

// AccountWriteStore defines the account persistence needed here.
type AccountWriteStore interface {
	Create(ctx context.Context, a account.Account) error
	Exists(ctx context.Context, username string) (bool, error)
}

// CreateAccountInput carries input for account creation.
type CreateAccountInput struct {
	Username string
	Password string
	Role     string
	LinkedID int // MemberId or TrainerId; 0 for admin
}

// CreateAccountDeps holds dependencies for CreateAccount.
type CreateAccountDeps struct {
	AccountStore AccountWriteStore
}

// ErrUsernameTaken reports a duplicate username.
var ErrUsernameTaken = errors.New("username is already taken")

// ExecuteCreateAccount creates a login for a member, trainer or admin.
// Admin only.
// PRE: password meets the minimum length
// POST: Account exists with a bcrypt hash; plaintext is never stored
func ExecuteCreateAccount(ctx context.Context, principal identity.Principal, input CreateAccountInput, deps CreateAccountDeps) error {
	if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}

	taken, err := deps.AccountStore.Exists(ctx, input.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	a := account.Account{
		Username: input.Username,
		Role:     input.Role,
		LinkedID: input.LinkedID,
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.SetPassword(input.Password); err != nil {
		return err
	}

	if err := deps.AccountStore.Create(ctx, a); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "account_created", "username", input.Username, "role", input.Role, "by", principal.UserName)
	return nil
}
