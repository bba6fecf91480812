package projections_test

import (
	"context"
	"errors"
	"testing"

	workoutStore "gymtrack/internal/adapters/storage/workout"
	"gymtrack/internal/application/projections"
	"gymtrack/internal/domain/identity"
)

// TestQueryGetReports_CompletedWorkouts verifies the completed-workout
// aggregates: only members whose tracker reached Completed appear, with
// one count per member across plans.
func TestQueryGetReports_CompletedWorkouts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	workouts := workoutStore.NewSQLStore(f.exec)

	f.mustExec(t, "INSERT INTO Trainer (TrainerId, TrainerName) VALUES (1, 'Coach Kim')")
	f.mustExec(t, "INSERT INTO Package (PackageId, PackageName, Price, DurationDays) VALUES (1, 'Monthly', 49.0, 30)")
	f.mustExec(t, "INSERT INTO Member (MemberId, Name, TrainerId, PackageId) VALUES (1, 'Busy Bea', 1, 1)")
	f.mustExec(t, "INSERT INTO Member (MemberId, Name, TrainerId, PackageId) VALUES (2, 'Starting Sol', 1, 1)")
	f.mustExec(t, "INSERT INTO WorkOutPlan (PlanId, Goal, DurationWeeks, TrainerId) VALUES (10, 'Strength', 8, 1)")
	f.mustExec(t, "INSERT INTO WorkOutPlan (PlanId, Goal, DurationWeeks, TrainerId) VALUES (11, 'Cardio', 4, 1)")

	// Enrollment seeds the tracker as Assigned; two of Bea's plans finish.
	for _, enroll := range [][2]int{{1, 10}, {1, 11}, {2, 10}} {
		if err := workouts.Enroll(ctx, enroll[0], enroll[1], "2026-03-01"); err != nil {
			t.Fatalf("enroll %v: %v", enroll, err)
		}
	}
	if err := workouts.MarkCompleted(ctx, 1, 10); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := workouts.MarkCompleted(ctx, 1, 11); err != nil {
		t.Fatalf("complete: %v", err)
	}

	result, err := projections.QueryGetReports(ctx, identity.Admin(), projections.GetReportsDeps{
		Executor:    f.exec,
		MemberStore: f.members,
	})
	if err != nil {
		t.Fatalf("reports: %v", err)
	}

	if len(result.CompletedMembers) != 1 || result.CompletedMembers[0] != "Busy Bea" {
		t.Errorf("CompletedMembers=%v want [Busy Bea]", result.CompletedMembers)
	}
	if len(result.CompletedCounts) != 1 {
		t.Fatalf("CompletedCounts=%v want one row", result.CompletedCounts)
	}
	if got := result.CompletedCounts[0]; got.MemberName != "Busy Bea" || got.Completed != 2 {
		t.Errorf("got %+v want {Busy Bea 2}", got)
	}
}

// TestQueryGetReports_AdminOnly verifies the reports page is gated.
func TestQueryGetReports_AdminOnly(t *testing.T) {
	f := newFixture(t)

	_, err := projections.QueryGetReports(context.Background(), identity.Trainer(1, "Coach"),
		projections.GetReportsDeps{Executor: f.exec, MemberStore: f.members})
	if !errors.Is(err, identity.ErrNotAuthorized) {
		t.Fatalf("err=%v want ErrNotAuthorized", err)
	}
}
