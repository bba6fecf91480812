package equipment

import (
	"context"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/equipment"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates an equipment store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

func (s *SQLStore) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT EquipmentId, Name, Category, Status FROM Equipment ORDER BY Category, Name")
	if err != nil {
		return nil, err
	}
	items := make([]domain.Equipment, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.Equipment{
			EquipmentID: r.Int("EquipmentId"),
			Name:        r.String("Name"),
			Category:    r.String("Category"),
			Status:      r.String("Status"),
		})
	}
	return items, nil
}

func (s *SQLStore) CreateEquipment(ctx context.Context, e domain.Equipment) error {
	status := e.Status
	if status == "" {
		status = domain.StatusAvailable
	}
	return s.exec.Exec(ctx,
		"INSERT INTO Equipment (Name, Category, Status) VALUES (?, ?, ?)",
		e.Name, e.Category, status)
}

func (s *SQLStore) SetStatus(ctx context.Context, id int, status string) error {
	return s.exec.Exec(ctx,
		"UPDATE Equipment SET Status = ? WHERE EquipmentId = ?", status, id)
}

func (s *SQLStore) ListExercises(ctx context.Context) ([]ExerciseRow, error) {
	rows, err := s.exec.Query(ctx,
		`SELECT x.ExerciseId, x.Name, x.MuscleGroup, x.EquipmentId, e.Name AS EquipmentName
		 FROM Exercise x
		 LEFT JOIN Equipment e ON e.EquipmentId = x.EquipmentId
		 ORDER BY x.MuscleGroup, x.Name`)
	if err != nil {
		return nil, err
	}
	exercises := make([]ExerciseRow, 0, len(rows))
	for _, r := range rows {
		exercises = append(exercises, ExerciseRow{
			Exercise: domain.Exercise{
				ExerciseID:  r.Int("ExerciseId"),
				Name:        r.String("Name"),
				MuscleGroup: r.String("MuscleGroup"),
				EquipmentID: r.Int("EquipmentId"),
			},
			EquipmentName: r.String("EquipmentName"),
		})
	}
	return exercises, nil
}

func (s *SQLStore) CreateExercise(ctx context.Context, e domain.Exercise) error {
	var equipmentID any
	if e.EquipmentID != 0 {
		equipmentID = e.EquipmentID
	}
	return s.exec.Exec(ctx,
		"INSERT INTO Exercise (Name, MuscleGroup, EquipmentId) VALUES (?, ?, ?)",
		e.Name, e.MuscleGroup, equipmentID)
}
