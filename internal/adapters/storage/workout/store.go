package workout

import (
	"context"
	"errors"

	domain "gymtrack/internal/domain/workout"
)

// ErrNotFound reports a lookup for a plan that does not exist.
var ErrNotFound = errors.New("workout plan not found")

// PlanRow is a plan joined with its trainer's name for display.
type PlanRow struct {
	domain.Plan
	TrainerName string
}

// MemberPlanRow is a member's enrollment joined with plan and progress.
type MemberPlanRow struct {
	PlanID     int
	Goal       string
	EnrolledOn string
	Status     string
}

// Store persists workout plans, enrollments and tracker progress.
type Store interface {
	GetPlan(ctx context.Context, id int) (domain.Plan, error)
	ListPlans(ctx context.Context, trainerID int) ([]PlanRow, error)
	CreatePlan(ctx context.Context, p domain.Plan) error
	UpdatePlan(ctx context.Context, p domain.Plan) error
	DeletePlan(ctx context.Context, id int) error
	// Enroll writes the MemberPlan row and seeds the tracker as assigned.
	Enroll(ctx context.Context, memberID, planID int, enrolledOn string) error
	IsEnrolled(ctx context.Context, memberID, planID int) (bool, error)
	PlansForMember(ctx context.Context, memberID int) ([]MemberPlanRow, error)
	MarkCompleted(ctx context.Context, memberID, planID int) error
	// PlanOptionsSilent feeds the enroll form, degrading to empty.
	PlanOptionsSilent(ctx context.Context) []Option
}

// Option is a plan reduced to what a form dropdown needs.
type Option struct {
	ID   int
	Goal string
}
