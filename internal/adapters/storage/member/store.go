package member

import (
	"context"
	"errors"

	"gymtrack/internal/domain/identity"
	domain "gymtrack/internal/domain/member"
)

// ErrNotFound is returned when no member matches the given id.
var ErrNotFound = errors.New("member not found")

// Option is an id/name pair for form dropdowns.
type Option struct {
	ID   int
	Name string
}

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id int) (domain.Member, error)
	List(ctx context.Context, scope identity.Principal) ([]domain.Member, error)
	Create(ctx context.Context, m domain.Member) error
	Update(ctx context.Context, m domain.Member) error
	Delete(ctx context.Context, id int) error
	// OptionsSilent lists id/name pairs for dropdowns, degrading to empty
	// on failure so forms still render.
	OptionsSilent(ctx context.Context, scope identity.Principal) []Option
}
