package trainer

import (
	"context"
	"errors"

	domain "gymtrack/internal/domain/trainer"
)

// ErrNotFound is returned when no trainer matches the given id.
var ErrNotFound = errors.New("trainer not found")

// Option is an id/name pair for form dropdowns.
type Option struct {
	ID   int
	Name string
}

// Store persists Trainer state.
type Store interface {
	GetByID(ctx context.Context, id int) (domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
	Create(ctx context.Context, t domain.Trainer) error
	Update(ctx context.Context, t domain.Trainer) error
	Delete(ctx context.Context, id int) error
	OptionsSilent(ctx context.Context) []Option
}
