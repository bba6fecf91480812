package attendance

import (
	"context"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/attendance"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates an attendance store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// Insert records a check-in. CheckOut stays NULL until the member leaves.
// PRE: a passed Validate
func (s *SQLStore) Insert(ctx context.Context, a domain.Attendance) error {
	return s.exec.Exec(ctx,
		"INSERT INTO Attendance (MemberId, Date, CheckIn, CheckOut) VALUES (?, ?, ?, NULL)",
		a.MemberID, a.Date, a.CheckIn)
}

// CheckOut closes the member's open session on the given date.
// POST: only rows with CheckOut IS NULL are touched, so a second
// check-out on the same day closes nothing and returns 0
func (s *SQLStore) CheckOut(ctx context.Context, memberID int, date, checkOut string) (int, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT COUNT(*) AS Open FROM Attendance WHERE MemberId = ? AND Date = ? AND CheckOut IS NULL",
		memberID, date)
	if err != nil {
		return 0, err
	}
	open := 0
	if len(rows) > 0 {
		open = rows[0].Int("Open")
	}
	if open == 0 {
		return 0, nil
	}
	err = s.exec.Exec(ctx,
		"UPDATE Attendance SET CheckOut = ? WHERE MemberId = ? AND Date = ? AND CheckOut IS NULL",
		checkOut, memberID, date)
	if err != nil {
		return 0, err
	}
	return open, nil
}

// ListByMember lists a member's attendance, newest day first.
func (s *SQLStore) ListByMember(ctx context.Context, memberID int) ([]domain.Attendance, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT AttendanceId, MemberId, Date, CheckIn, CheckOut FROM Attendance WHERE MemberId = ? ORDER BY Date DESC, CheckIn DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Attendance, 0, len(rows))
	for _, r := range rows {
		records = append(records, fromRow(r))
	}
	return records, nil
}

// SheetForDate lists a day's records joined with member names. A nonzero
// trainerID restricts the sheet to that trainer's roster.
func (s *SQLStore) SheetForDate(ctx context.Context, date string, trainerID int) ([]SheetRow, error) {
	statement := `SELECT a.AttendanceId, a.MemberId, m.Name AS MemberName, a.Date, a.CheckIn, a.CheckOut
		 FROM Attendance a
		 JOIN Member m ON m.MemberId = a.MemberId
		 WHERE a.Date = ?`
	args := []any{date}
	if trainerID != 0 {
		statement += " AND m.TrainerId = ?"
		args = append(args, trainerID)
	}
	statement += " ORDER BY a.CheckIn"

	rows, err := s.exec.Execute(ctx, statement, args, storage.Options{})
	if err != nil {
		return nil, err
	}
	sheet := make([]SheetRow, 0, len(rows))
	for _, r := range rows {
		sheet = append(sheet, SheetRow{
			Attendance: fromRow(r),
			MemberName: r.String("MemberName"),
		})
	}
	return sheet, nil
}

// CountForDateSilent counts a day's check-ins for the dashboard.
// POST: Never fails; degrades to 0
func (s *SQLStore) CountForDateSilent(ctx context.Context, date string) int {
	rows := s.exec.QuerySilent(ctx,
		"SELECT COUNT(*) AS Total FROM Attendance WHERE Date = ?", date)
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Int("Total")
}

func fromRow(r storage.Row) domain.Attendance {
	return domain.Attendance{
		AttendanceID: r.Int("AttendanceId"),
		MemberID:     r.Int("MemberId"),
		Date:         r.String("Date"),
		CheckIn:      r.String("CheckIn"),
		CheckOut:     r.String("CheckOut"),
	}
}
