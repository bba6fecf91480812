package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymtrack/internal/domain/attendance"
	"gymtrack/internal/domain/identity"
)

// AttendanceWriteStore defines the attendance persistence needed here.
type AttendanceWriteStore interface {
	Insert(ctx context.Context, a attendance.Attendance) error
	CheckOut(ctx context.Context, memberID int, date, checkOut string) (int, error)
	ListByMember(ctx context.Context, memberID int) ([]attendance.Attendance, error)
}

// RecordAttendanceInput carries input for check-in and check-out.
type RecordAttendanceInput struct {
	MemberID int
	// Now overrides the wall clock in tests; zero means time.Now.
	Now time.Time
}

// RecordAttendanceDeps holds dependencies for the attendance orchestrators.
type RecordAttendanceDeps struct {
	AttendanceStore AttendanceWriteStore
	MemberStore     MemberLookupStore
}

var (
	ErrAlreadyCheckedIn = errors.New("an open session already exists for today")
	ErrNoOpenSession    = errors.New("no open session to check out of")
)

// ExecuteCheckIn opens today's attendance session for a member.
// PRE: principal may act on the member
// POST: An Attendance row with a NULL check-out exists for today
func ExecuteCheckIn(ctx context.Context, principal identity.Principal, input RecordAttendanceInput, deps RecordAttendanceDeps) error {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(m.MemberID, m.TrainerID); err != nil {
		return err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := now.Format("2006-01-02")

	records, err := deps.AttendanceStore.ListByMember(ctx, input.MemberID)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.Date == today && !r.IsCheckedOut() {
			return ErrAlreadyCheckedIn
		}
	}

	a := attendance.Attendance{
		MemberID: input.MemberID,
		Date:     today,
		CheckIn:  now.Format("15:04"),
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := deps.AttendanceStore.Insert(ctx, a); err != nil {
		return err
	}
	slog.Info("attendance_event", "event", "check_in", "member_id", input.MemberID, "date", today, "by", principal.UserName)
	return nil
}

// ExecuteCheckOut closes today's open session for a member.
// PRE: principal may act on the member
// POST: The open session's CheckOut is set; closed sessions are untouched
func ExecuteCheckOut(ctx context.Context, principal identity.Principal, input RecordAttendanceInput, deps RecordAttendanceDeps) error {
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(m.MemberID, m.TrainerID); err != nil {
		return err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	closed, err := deps.AttendanceStore.CheckOut(ctx, input.MemberID, now.Format("2006-01-02"), now.Format("15:04"))
	if err != nil {
		return err
	}
	if closed == 0 {
		return ErrNoOpenSession
	}
	slog.Info("attendance_event", "event", "check_out", "member_id", input.MemberID, "by", principal.UserName)
	return nil
}
