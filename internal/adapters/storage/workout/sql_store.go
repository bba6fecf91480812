package workout

import (
	"context"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/workout"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a workout store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

func (s *SQLStore) GetPlan(ctx context.Context, id int) (domain.Plan, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT PlanId, Goal, DurationWeeks, TrainerId FROM WorkOutPlan WHERE PlanId = ?", id)
	if err != nil {
		return domain.Plan{}, err
	}
	if len(rows) == 0 {
		return domain.Plan{}, ErrNotFound
	}
	return planFromRow(rows[0]), nil
}

// ListPlans lists plans joined with trainer names. A nonzero trainerID
// restricts the list to that trainer's own plans.
func (s *SQLStore) ListPlans(ctx context.Context, trainerID int) ([]PlanRow, error) {
	statement := `SELECT p.PlanId, p.Goal, p.DurationWeeks, p.TrainerId, t.TrainerName
		 FROM WorkOutPlan p
		 JOIN Trainer t ON t.TrainerId = p.TrainerId`
	args := []any{}
	if trainerID != 0 {
		statement += " WHERE p.TrainerId = ?"
		args = append(args, trainerID)
	}
	statement += " ORDER BY p.PlanId"

	rows, err := s.exec.Execute(ctx, statement, args, storage.Options{})
	if err != nil {
		return nil, err
	}
	plans := make([]PlanRow, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, PlanRow{
			Plan:        planFromRow(r),
			TrainerName: r.String("TrainerName"),
		})
	}
	return plans, nil
}

// CreatePlan inserts a plan.
// PRE: p passed Validate
func (s *SQLStore) CreatePlan(ctx context.Context, p domain.Plan) error {
	return s.exec.Exec(ctx,
		"INSERT INTO WorkOutPlan (Goal, DurationWeeks, TrainerId) VALUES (?, ?, ?)",
		p.Goal, p.DurationWeeks, p.TrainerID)
}

func (s *SQLStore) UpdatePlan(ctx context.Context, p domain.Plan) error {
	return s.exec.Exec(ctx,
		"UPDATE WorkOutPlan SET Goal = ?, DurationWeeks = ?, TrainerId = ? WHERE PlanId = ?",
		p.Goal, p.DurationWeeks, p.TrainerID, p.PlanID)
}

func (s *SQLStore) DeletePlan(ctx context.Context, id int) error {
	return s.exec.Exec(ctx, "DELETE FROM WorkOutPlan WHERE PlanId = ?", id)
}

// Enroll writes the MemberPlan row. The engine's trigger seeds the
// assigned tracker row in the same transaction.
// PRE: the member is not already enrolled in the plan
func (s *SQLStore) Enroll(ctx context.Context, memberID, planID int, enrolledOn string) error {
	return s.exec.Exec(ctx,
		"INSERT INTO MemberPlan (MemberId, PlanId, EnrolledOn) VALUES (?, ?, ?)",
		memberID, planID, enrolledOn)
}

func (s *SQLStore) IsEnrolled(ctx context.Context, memberID, planID int) (bool, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT 1 AS One FROM MemberPlan WHERE MemberId = ? AND PlanId = ?", memberID, planID)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// PlansForMember lists a member's enrollments with their tracker status.
func (s *SQLStore) PlansForMember(ctx context.Context, memberID int) ([]MemberPlanRow, error) {
	rows, err := s.exec.Query(ctx,
		`SELECT mp.PlanId, p.Goal, mp.EnrolledOn, w.Status
		 FROM MemberPlan mp
		 JOIN WorkOutPlan p ON p.PlanId = mp.PlanId
		 JOIN WorkOutTracker w ON w.MemberId = mp.MemberId AND w.PlanId = mp.PlanId
		 WHERE mp.MemberId = ?
		 ORDER BY mp.EnrolledOn DESC`, memberID)
	if err != nil {
		return nil, err
	}
	plans := make([]MemberPlanRow, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, MemberPlanRow{
			PlanID:     r.Int("PlanId"),
			Goal:       r.String("Goal"),
			EnrolledOn: r.String("EnrolledOn"),
			Status:     r.String("Status"),
		})
	}
	return plans, nil
}

// MarkCompleted flips the tracker for one member/plan pair.
func (s *SQLStore) MarkCompleted(ctx context.Context, memberID, planID int) error {
	return s.exec.Exec(ctx,
		"UPDATE WorkOutTracker SET Status = ? WHERE MemberId = ? AND PlanId = ?",
		domain.StatusCompleted, memberID, planID)
}

// PlanOptionsSilent feeds the enroll form dropdown.
// POST: Never fails; degrades to an empty list
func (s *SQLStore) PlanOptionsSilent(ctx context.Context) []Option {
	rows := s.exec.QuerySilent(ctx,
		"SELECT PlanId, Goal FROM WorkOutPlan ORDER BY Goal")
	options := make([]Option, 0, len(rows))
	for _, r := range rows {
		options = append(options, Option{ID: r.Int("PlanId"), Goal: r.String("Goal")})
	}
	return options
}

func planFromRow(r storage.Row) domain.Plan {
	return domain.Plan{
		PlanID:        r.Int("PlanId"),
		Goal:          r.String("Goal"),
		DurationWeeks: r.Int("DurationWeeks"),
		TrainerID:     r.Int("TrainerId"),
	}
}
