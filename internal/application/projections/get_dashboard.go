package projections

import (
	"context"
	"time"

	memberStore "gymtrack/internal/adapters/storage/member"
	workoutStore "gymtrack/internal/adapters/storage/workout"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/notice"
)

// DashboardMemberStore defines the member reads used by the dashboard.
type DashboardMemberStore interface {
	OptionsSilent(ctx context.Context, scope identity.Principal) []memberStore.Option
}

// DashboardAttendanceStore defines the attendance reads used by the dashboard.
type DashboardAttendanceStore interface {
	CountForDateSilent(ctx context.Context, date string) int
}

// DashboardNoticeStore defines the notice reads used by the dashboard.
type DashboardNoticeStore interface {
	PublishedSilent(ctx context.Context, limit int) []notice.Notice
}

// DashboardWorkoutStore defines the workout reads used by the dashboard.
type DashboardWorkoutStore interface {
	PlansForMember(ctx context.Context, memberID int) ([]workoutStore.MemberPlanRow, error)
}

// GetDashboardDeps holds dependencies for the dashboard projection.
// Every read is silent: one failing widget never blanks the page.
type GetDashboardDeps struct {
	MemberStore     DashboardMemberStore
	AttendanceStore DashboardAttendanceStore
	NoticeStore     DashboardNoticeStore
	WorkoutStore    DashboardWorkoutStore
	StatusDeps      GetMembershipStatusDeps
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	Principal identity.Principal
	Notices   []notice.Notice

	// Admin and trainer
	RosterSize    int
	CheckInsToday int

	// Member
	MembershipStatus string
	MembershipEnd    string
	Plans            []workoutStore.MemberPlanRow
}

// QueryGetDashboard aggregates the landing page for the principal's role.
// POST: Never fails; every widget degrades independently
func QueryGetDashboard(ctx context.Context, principal identity.Principal, deps GetDashboardDeps, now time.Time) DashboardResult {
	result := DashboardResult{Principal: principal}

	result.Notices = deps.NoticeStore.PublishedSilent(ctx, 5)

	if principal.CanManageRoster() {
		result.RosterSize = len(deps.MemberStore.OptionsSilent(ctx, principal))
		result.CheckInsToday = deps.AttendanceStore.CountForDateSilent(ctx, now.Format("2006-01-02"))
		return result
	}

	// Member landing: status plus assigned plans, both degrading quietly.
	status, err := QueryGetMembershipStatus(ctx, principal, principal.UserID, deps.StatusDeps, now)
	if err == nil {
		result.MembershipStatus = status.Status
		result.MembershipEnd = status.EndDate
	}
	if plans, err := deps.WorkoutStore.PlansForMember(ctx, principal.UserID); err == nil {
		result.Plans = plans
	}
	return result
}
