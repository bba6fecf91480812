package orchestrators

import (
	"context"
	"log/slog"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/workout"
)

// PlanWriteStore defines the plan persistence needed here.
type PlanWriteStore interface {
	GetPlan(ctx context.Context, id int) (workout.Plan, error)
	CreatePlan(ctx context.Context, p workout.Plan) error
	UpdatePlan(ctx context.Context, p workout.Plan) error
	DeletePlan(ctx context.Context, id int) error
}

// ManagePlanDeps holds dependencies for the plan orchestrators.
type ManagePlanDeps struct {
	WorkoutStore PlanWriteStore
}

// ExecuteCreatePlan creates a workout plan. A trainer always owns the
// plans they create; admin may assign any trainer.
// PRE: principal can manage the roster
func ExecuteCreatePlan(ctx context.Context, principal identity.Principal, p workout.Plan, deps ManagePlanDeps) error {
	if !principal.CanManageRoster() {
		return identity.ErrNotAuthorized
	}
	if principal.Role == identity.RoleTrainer {
		p.TrainerID = principal.UserID
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := deps.WorkoutStore.CreatePlan(ctx, p); err != nil {
		return err
	}
	slog.Info("workout_event", "event", "plan_created", "goal", p.Goal, "by", principal.UserName)
	return nil
}

// ExecuteUpdatePlan updates a plan the principal owns.
// PRE: trainers own the plan; admin unrestricted
func ExecuteUpdatePlan(ctx context.Context, principal identity.Principal, p workout.Plan, deps ManagePlanDeps) error {
	existing, err := deps.WorkoutStore.GetPlan(ctx, p.PlanID)
	if err != nil {
		return err
	}
	if principal.Role == identity.RoleTrainer {
		if existing.TrainerID != principal.UserID {
			return ErrNotPlanOwner
		}
		p.TrainerID = principal.UserID
	} else if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := deps.WorkoutStore.UpdatePlan(ctx, p); err != nil {
		return err
	}
	slog.Info("workout_event", "event", "plan_updated", "plan_id", p.PlanID, "by", principal.UserName)
	return nil
}

// ExecuteDeletePlan deletes a plan the principal owns. Enrollments cascade.
func ExecuteDeletePlan(ctx context.Context, principal identity.Principal, planID int, deps ManagePlanDeps) error {
	existing, err := deps.WorkoutStore.GetPlan(ctx, planID)
	if err != nil {
		return err
	}
	if principal.Role == identity.RoleTrainer {
		if existing.TrainerID != principal.UserID {
			return ErrNotPlanOwner
		}
	} else if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}
	if err := deps.WorkoutStore.DeletePlan(ctx, planID); err != nil {
		return err
	}
	slog.Info("workout_event", "event", "plan_deleted", "plan_id", planID, "by", principal.UserName)
	return nil
}
