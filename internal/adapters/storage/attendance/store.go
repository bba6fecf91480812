package attendance

import (
	"context"

	domain "gymtrack/internal/domain/attendance"
)

// SheetRow is an attendance record joined with the member name for display.
type SheetRow struct {
	domain.Attendance
	MemberName string
}

// Store persists Attendance state.
type Store interface {
	Insert(ctx context.Context, a domain.Attendance) error
	// CheckOut closes the member's open session on the given date.
	// Returns the number of rows closed (0 = nothing was open).
	CheckOut(ctx context.Context, memberID int, date, checkOut string) (int, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.Attendance, error)
	// SheetForDate lists a day's records joined with member names,
	// optionally restricted to one trainer's roster (0 = all).
	SheetForDate(ctx context.Context, date string, trainerID int) ([]SheetRow, error)
	// CountForDateSilent counts a day's check-ins, degrading to 0.
	CountForDateSilent(ctx context.Context, date string) int
}
