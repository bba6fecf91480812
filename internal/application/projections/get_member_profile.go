package projections

import (
	"context"
	"time"

	workoutStore "gymtrack/internal/adapters/storage/workout"
	"gymtrack/internal/domain/attendance"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
	"gymtrack/internal/domain/payment"
)

// ProfileMemberStore defines the member reads used by the profile.
type ProfileMemberStore interface {
	GetByID(ctx context.Context, id int) (member.Member, error)
}

// ProfilePaymentStore defines the payment reads used by the profile.
type ProfilePaymentStore interface {
	ListByMember(ctx context.Context, memberID int) ([]payment.Payment, error)
}

// ProfileAttendanceStore defines the attendance reads used by the profile.
type ProfileAttendanceStore interface {
	ListByMember(ctx context.Context, memberID int) ([]attendance.Attendance, error)
}

// ProfileWorkoutStore defines the workout reads used by the profile.
type ProfileWorkoutStore interface {
	PlansForMember(ctx context.Context, memberID int) ([]workoutStore.MemberPlanRow, error)
}

// GetMemberProfileDeps holds dependencies for the profile projection.
type GetMemberProfileDeps struct {
	MemberStore     ProfileMemberStore
	PaymentStore    ProfilePaymentStore
	AttendanceStore ProfileAttendanceStore
	WorkoutStore    ProfileWorkoutStore
	StatusDeps      GetMembershipStatusDeps
}

// AttendanceLine is one visit with the display duration precomputed.
type AttendanceLine struct {
	attendance.Attendance
	Duration string
}

// MemberProfileResult aggregates everything the profile page shows.
type MemberProfileResult struct {
	Member     member.Member
	Status     MembershipStatusResult
	Payments   []payment.Payment
	Attendance []AttendanceLine
	Plans      []workoutStore.MemberPlanRow
}

// QueryGetMemberProfile loads one member's full profile.
// PRE: principal may view the member
// POST: All sections belong to the same member
func QueryGetMemberProfile(ctx context.Context, principal identity.Principal, memberID int, deps GetMemberProfileDeps, now time.Time) (MemberProfileResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, memberID)
	if err != nil {
		return MemberProfileResult{}, err
	}
	if err := principal.CanViewMember(m.MemberID, m.TrainerID); err != nil {
		return MemberProfileResult{}, err
	}

	status, err := QueryGetMembershipStatus(ctx, principal, memberID, deps.StatusDeps, now)
	if err != nil {
		return MemberProfileResult{}, err
	}
	payments, err := deps.PaymentStore.ListByMember(ctx, memberID)
	if err != nil {
		return MemberProfileResult{}, err
	}
	visits, err := deps.AttendanceStore.ListByMember(ctx, memberID)
	if err != nil {
		return MemberProfileResult{}, err
	}
	plans, err := deps.WorkoutStore.PlansForMember(ctx, memberID)
	if err != nil {
		return MemberProfileResult{}, err
	}

	lines := make([]AttendanceLine, 0, len(visits))
	for _, v := range visits {
		lines = append(lines, AttendanceLine{Attendance: v, Duration: v.DurationDisplay()})
	}

	return MemberProfileResult{
		Member:     m,
		Status:     status,
		Payments:   payments,
		Attendance: lines,
		Plans:      plans,
	}, nil
}
