package equipment

import (
	"context"

	domain "gymtrack/internal/domain/equipment"
)

// ExerciseRow is an exercise joined with the equipment it uses, if any.
type ExerciseRow struct {
	domain.Exercise
	EquipmentName string
}

// Store persists the equipment inventory and the exercise catalog.
type Store interface {
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	CreateEquipment(ctx context.Context, e domain.Equipment) error
	SetStatus(ctx context.Context, id int, status string) error
	ListExercises(ctx context.Context) ([]ExerciseRow, error)
	CreateExercise(ctx context.Context, e domain.Exercise) error
}
