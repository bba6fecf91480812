package projections

import (
	"context"

	attendanceStore "gymtrack/internal/adapters/storage/attendance"
	"gymtrack/internal/domain/identity"
)

// SheetAttendanceStore defines the attendance reads used by the sheet.
type SheetAttendanceStore interface {
	SheetForDate(ctx context.Context, date string, trainerID int) ([]attendanceStore.SheetRow, error)
}

// GetAttendanceSheetDeps holds dependencies for the sheet projection.
type GetAttendanceSheetDeps struct {
	AttendanceStore SheetAttendanceStore
}

// AttendanceSheetLine is one sheet row with the display duration precomputed.
type AttendanceSheetLine struct {
	attendanceStore.SheetRow
	Duration string
}

// QueryGetAttendanceSheet lists one day's visits: the whole gym for admin,
// the trainer's own roster for a trainer.
// PRE: principal can manage the roster; date is YYYY-MM-DD
func QueryGetAttendanceSheet(ctx context.Context, principal identity.Principal, date string, deps GetAttendanceSheetDeps) ([]AttendanceSheetLine, error) {
	if !principal.CanManageRoster() {
		return nil, identity.ErrNotAuthorized
	}

	trainerID := 0
	if principal.Role == identity.RoleTrainer {
		trainerID = principal.UserID
	}
	rows, err := deps.AttendanceStore.SheetForDate(ctx, date, trainerID)
	if err != nil {
		return nil, err
	}

	lines := make([]AttendanceSheetLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, AttendanceSheetLine{SheetRow: r, Duration: r.DurationDisplay()})
	}
	return lines, nil
}
