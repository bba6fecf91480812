package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
	"gymtrack/internal/domain/workout"
)

// EnrollmentStore defines the workout persistence needed by Enroll.
type EnrollmentStore interface {
	GetPlan(ctx context.Context, id int) (workout.Plan, error)
	Enroll(ctx context.Context, memberID, planID int, enrolledOn string) error
	IsEnrolled(ctx context.Context, memberID, planID int) (bool, error)
	MarkCompleted(ctx context.Context, memberID, planID int) error
}

// MemberLookupStore resolves a member for scope checks.
type MemberLookupStore interface {
	GetByID(ctx context.Context, id int) (member.Member, error)
}

// EnrollMemberInput carries input for the enrollment orchestrator.
type EnrollMemberInput struct {
	MemberID int
	PlanID   int
}

// EnrollMemberDeps holds dependencies for Enroll.
type EnrollMemberDeps struct {
	WorkoutStore EnrollmentStore
	MemberStore  MemberLookupStore
}

var (
	ErrAlreadyEnrolled = errors.New("member is already enrolled in this plan")
	ErrNotPlanOwner    = errors.New("trainers may only enroll members into their own plans")
)

// ExecuteEnrollMember enrolls a member into a workout plan and seeds the
// progress tracker as assigned. Enrollment is a staff action: members do
// not sign themselves up.
// PRE: principal is admin or a trainer acting on their own member; trainers own the plan
// POST: MemberPlan and its tracker row are committed together
func ExecuteEnrollMember(ctx context.Context, principal identity.Principal, input EnrollMemberInput, deps EnrollMemberDeps) error {
	if !principal.CanManageRoster() {
		return identity.ErrNotAuthorized
	}
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(m.MemberID, m.TrainerID); err != nil {
		return err
	}

	plan, err := deps.WorkoutStore.GetPlan(ctx, input.PlanID)
	if err != nil {
		return err
	}
	if principal.Role == identity.RoleTrainer && plan.TrainerID != principal.UserID {
		return ErrNotPlanOwner
	}

	enrolled, err := deps.WorkoutStore.IsEnrolled(ctx, input.MemberID, input.PlanID)
	if err != nil {
		return err
	}
	if enrolled {
		return ErrAlreadyEnrolled
	}

	today := time.Now().Format("2006-01-02")
	if err := deps.WorkoutStore.Enroll(ctx, input.MemberID, input.PlanID, today); err != nil {
		return err
	}
	slog.Info("workout_event", "event", "member_enrolled", "member_id", input.MemberID, "plan_id", input.PlanID, "by", principal.UserName)
	return nil
}

// ExecuteCompletePlan marks a member's plan as completed in the tracker.
// PRE: principal may act on the member and the member is enrolled
func ExecuteCompletePlan(ctx context.Context, principal identity.Principal, input EnrollMemberInput, deps EnrollMemberDeps) error {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(m.MemberID, m.TrainerID); err != nil {
		return err
	}

	enrolled, err := deps.WorkoutStore.IsEnrolled(ctx, input.MemberID, input.PlanID)
	if err != nil {
		return err
	}
	if !enrolled {
		return errors.New("member is not enrolled in this plan")
	}

	if err := deps.WorkoutStore.MarkCompleted(ctx, input.MemberID, input.PlanID); err != nil {
		return err
	}
	slog.Info("workout_event", "event", "plan_completed", "member_id", input.MemberID, "plan_id", input.PlanID, "by", principal.UserName)
	return nil
}
