package membership

import (
	"context"
	"errors"

	domain "gymtrack/internal/domain/membership"
)

// ErrNotFound is returned when no package matches the given id.
var ErrNotFound = errors.New("package not found")

// Option is an id/name/price triple for payment and registration forms.
type Option struct {
	ID    int
	Name  string
	Price float64
}

// Store persists Package state and answers membership end-date lookups.
type Store interface {
	GetByID(ctx context.Context, id int) (domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p domain.Package) error
	Update(ctx context.Context, p domain.Package) error
	Delete(ctx context.Context, id int) error
	OptionsSilent(ctx context.Context) []Option
	// EndDate returns the member's membership end date (YYYY-MM-DD),
	// derived from the latest payment plus the paid package's duration.
	// Empty string means no payment exists.
	EndDate(ctx context.Context, memberID int) (string, error)
}
