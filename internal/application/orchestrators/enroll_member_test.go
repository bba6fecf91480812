package orchestrators

import (
	"context"
	"errors"
	"testing"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
	"gymtrack/internal/domain/workout"
)

// mockMemberLookup implements MemberLookupStore for testing.
type mockMemberLookup struct {
	members map[int]member.Member
}

func (m *mockMemberLookup) GetByID(_ context.Context, id int) (member.Member, error) {
	mem, ok := m.members[id]
	if !ok {
		return member.Member{}, errors.New("not found")
	}
	return mem, nil
}

// mockWorkoutStore implements EnrollmentStore for testing.
type mockWorkoutStore struct {
	plans      map[int]workout.Plan
	enrolled   map[[2]int]bool
	enrollCall int
}

func (m *mockWorkoutStore) GetPlan(_ context.Context, id int) (workout.Plan, error) {
	p, ok := m.plans[id]
	if !ok {
		return workout.Plan{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockWorkoutStore) Enroll(_ context.Context, memberID, planID int, _ string) error {
	m.enrolled[[2]int{memberID, planID}] = true
	m.enrollCall++
	return nil
}

func (m *mockWorkoutStore) IsEnrolled(_ context.Context, memberID, planID int) (bool, error) {
	return m.enrolled[[2]int{memberID, planID}], nil
}

func (m *mockWorkoutStore) MarkCompleted(_ context.Context, memberID, planID int) error {
	if !m.enrolled[[2]int{memberID, planID}] {
		return errors.New("not enrolled")
	}
	return nil
}

func newEnrollFixture() (EnrollMemberDeps, *mockWorkoutStore) {
	workouts := &mockWorkoutStore{
		plans: map[int]workout.Plan{
			10: {PlanID: 10, Goal: "Strength", DurationWeeks: 8, TrainerID: 1},
			11: {PlanID: 11, Goal: "Cardio", DurationWeeks: 4, TrainerID: 2},
		},
		enrolled: map[[2]int]bool{},
	}
	members := &mockMemberLookup{
		members: map[int]member.Member{
			100: {MemberID: 100, Name: "Mine", TrainerID: 1},
			200: {MemberID: 200, Name: "Theirs", TrainerID: 2},
		},
	}
	return EnrollMemberDeps{WorkoutStore: workouts, MemberStore: members}, workouts
}

// TestExecuteEnrollMember_TrainerScope verifies a trainer can enroll their
// own member but not another trainer's.
func TestExecuteEnrollMember_TrainerScope(t *testing.T) {
	deps, workouts := newEnrollFixture()
	trainer := identity.Trainer(1, "Coach")

	err := ExecuteEnrollMember(context.Background(), trainer, EnrollMemberInput{MemberID: 100, PlanID: 10}, deps)
	if err != nil {
		t.Fatalf("own member: %v", err)
	}
	if workouts.enrollCall != 1 {
		t.Fatalf("enrollCall=%d want 1", workouts.enrollCall)
	}

	err = ExecuteEnrollMember(context.Background(), trainer, EnrollMemberInput{MemberID: 200, PlanID: 10}, deps)
	if !errors.Is(err, identity.ErrNotMyMember) {
		t.Fatalf("foreign member err=%v want ErrNotMyMember", err)
	}
	if workouts.enrollCall != 1 {
		t.Fatalf("foreign member reached the store")
	}
}

// TestExecuteEnrollMember_TrainerOwnsPlan verifies a trainer cannot enroll
// into another trainer's plan even for their own member.
func TestExecuteEnrollMember_TrainerOwnsPlan(t *testing.T) {
	deps, _ := newEnrollFixture()
	trainer := identity.Trainer(1, "Coach")

	err := ExecuteEnrollMember(context.Background(), trainer, EnrollMemberInput{MemberID: 100, PlanID: 11}, deps)
	if !errors.Is(err, ErrNotPlanOwner) {
		t.Fatalf("err=%v want ErrNotPlanOwner", err)
	}
}

// TestExecuteEnrollMember_StaffAction verifies enrollment is reserved for
// staff: a member cannot enroll anyone, themselves included, while admin
// is unrestricted.
func TestExecuteEnrollMember_StaffAction(t *testing.T) {
	deps, workouts := newEnrollFixture()

	self := identity.Member(100, "Mine")
	err := ExecuteEnrollMember(context.Background(), self, EnrollMemberInput{MemberID: 100, PlanID: 10}, deps)
	if !errors.Is(err, identity.ErrNotAuthorized) {
		t.Fatalf("self enroll err=%v want ErrNotAuthorized", err)
	}
	if workouts.enrollCall != 0 {
		t.Fatalf("member enrollment reached the store")
	}

	if err := ExecuteEnrollMember(context.Background(), identity.Admin(), EnrollMemberInput{MemberID: 200, PlanID: 11}, deps); err != nil {
		t.Fatalf("admin enroll: %v", err)
	}
}

// TestExecuteEnrollMember_Duplicate verifies a second enrollment into the
// same plan is rejected.
func TestExecuteEnrollMember_Duplicate(t *testing.T) {
	deps, _ := newEnrollFixture()
	admin := identity.Admin()

	if err := ExecuteEnrollMember(context.Background(), admin, EnrollMemberInput{MemberID: 100, PlanID: 10}, deps); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	err := ExecuteEnrollMember(context.Background(), admin, EnrollMemberInput{MemberID: 100, PlanID: 10}, deps)
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("err=%v want ErrAlreadyEnrolled", err)
	}
}
