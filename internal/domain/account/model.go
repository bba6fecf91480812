package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gymtrack/internal/domain/identity"
)

// Max length constants for user-editable fields.
const (
	MaxUsernameLength = 64
)

// ValidRoles contains all valid account roles.
var ValidRoles = []string{identity.RoleAdmin, identity.RoleTrainer, identity.RoleMember}

// Domain errors
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrInvalidRole      = errors.New("role must be one of: admin, trainer, member")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Account is a login principal for one of the three roles. LinkedID is the
// MemberId or TrainerId the account acts as; 0 for admin.
type Account struct {
	ID           int
	Username     string
	PasswordHash string
	Role         string
	LinkedID     int
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrEmptyUsername
	}
	if len(a.Username) > MaxUsernameLength {
		return errors.New("username cannot exceed 64 characters")
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	if a.Role != identity.RoleAdmin && a.LinkedID <= 0 {
		return errors.New("trainer and member accounts must link to a record")
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty and >= 8 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 8 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failed login counter and locks the
// account for 15 minutes after 5 failures.
// POST: FailedLogins incremented; LockedUntil set if >= 5 failures
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failed login counter and lock.
// POST: FailedLogins is 0, LockedUntil is zero
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// Principal returns the identity context this account acts as.
// INVARIANT: Account fields are not mutated
func (a *Account) Principal(displayName string) identity.Principal {
	if displayName == "" {
		displayName = a.Username
	}
	switch a.Role {
	case identity.RoleTrainer:
		return identity.Trainer(a.LinkedID, displayName)
	case identity.RoleMember:
		return identity.Member(a.LinkedID, displayName)
	}
	return identity.Admin()
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
