package trainer

import (
	"context"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/trainer"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a trainer store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// GetByID retrieves a Trainer by its id.
// POST: Returns the trainer or ErrNotFound
func (s *SQLStore) GetByID(ctx context.Context, id int) (domain.Trainer, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT TrainerId, TrainerName, Email, PhoneNo, Specialty FROM Trainer WHERE TrainerId = ?", id)
	if err != nil {
		return domain.Trainer{}, err
	}
	if len(rows) == 0 {
		return domain.Trainer{}, ErrNotFound
	}
	return fromRow(rows[0]), nil
}

// List retrieves all trainers ordered by id.
func (s *SQLStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT TrainerId, TrainerName, Email, PhoneNo, Specialty FROM Trainer ORDER BY TrainerId")
	if err != nil {
		return nil, err
	}
	trainers := make([]domain.Trainer, 0, len(rows))
	for _, r := range rows {
		trainers = append(trainers, fromRow(r))
	}
	return trainers, nil
}

// Create inserts a new trainer.
// PRE: t passed Validate
func (s *SQLStore) Create(ctx context.Context, t domain.Trainer) error {
	return s.exec.Exec(ctx,
		"INSERT INTO Trainer (TrainerName, Email, PhoneNo, Specialty) VALUES (?, ?, ?, ?)",
		t.TrainerName, nullIfEmpty(t.Email), nullIfEmpty(t.PhoneNo), nullIfEmpty(t.Specialty))
}

// Update rewrites every editable column of an existing trainer.
func (s *SQLStore) Update(ctx context.Context, t domain.Trainer) error {
	return s.exec.Exec(ctx,
		"UPDATE Trainer SET TrainerName=?, Email=?, PhoneNo=?, Specialty=? WHERE TrainerId=?",
		t.TrainerName, nullIfEmpty(t.Email), nullIfEmpty(t.PhoneNo), nullIfEmpty(t.Specialty), t.TrainerID)
}

// Delete removes a trainer.
func (s *SQLStore) Delete(ctx context.Context, id int) error {
	return s.exec.Exec(ctx, "DELETE FROM Trainer WHERE TrainerId = ?", id)
}

// OptionsSilent lists id/name pairs for dropdowns; degrades to empty.
func (s *SQLStore) OptionsSilent(ctx context.Context) []Option {
	rows := s.exec.QuerySilent(ctx,
		"SELECT TrainerId, TrainerName FROM Trainer ORDER BY TrainerName")
	opts := make([]Option, 0, len(rows))
	for _, r := range rows {
		opts = append(opts, Option{ID: r.Int("TrainerId"), Name: r.String("TrainerName")})
	}
	return opts
}

func fromRow(r storage.Row) domain.Trainer {
	return domain.Trainer{
		TrainerID:   r.Int("TrainerId"),
		TrainerName: r.String("TrainerName"),
		Email:       r.String("Email"),
		PhoneNo:     r.String("PhoneNo"),
		Specialty:   r.String("Specialty"),
	}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
