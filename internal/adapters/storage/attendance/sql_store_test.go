package attendance_test

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"gymtrack/internal/adapters/storage"
	attendanceStore "gymtrack/internal/adapters/storage/attendance"
	domain "gymtrack/internal/domain/attendance"
)

func newTestStore(t *testing.T) (*attendanceStore.SQLStore, *storage.Executor) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	exec := storage.NewExecutor(db)
	return attendanceStore.NewSQLStore(exec), exec
}

func seedMember(t *testing.T, exec *storage.Executor, name string, trainerID int) int {
	t.Helper()
	err := exec.Exec(context.Background(),
		"INSERT INTO Member (Name, Email, JoinDate, Gender, TrainerId) VALUES (?, ?, ?, ?, ?)",
		name, name+"@example.com", "2026-01-01", "M", trainerID)
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	rows, err := exec.Query(context.Background(),
		"SELECT MemberId FROM Member WHERE Name = ?", name)
	if err != nil || len(rows) != 1 {
		t.Fatalf("fetch seeded member: rows=%d err=%v", len(rows), err)
	}
	return rows[0].Int("MemberId")
}

// TestCheckInThenCheckOut walks the two halves of a gym visit: the open
// session shows the placeholder, check-out closes exactly that session,
// and a repeated check-out closes nothing.
func TestCheckInThenCheckOut(t *testing.T) {
	store, exec := newTestStore(t)
	ctx := context.Background()
	memberID := seedMember(t, exec, "Visitor", 0)

	visit := domain.Attendance{MemberID: memberID, Date: "2026-03-05", CheckIn: "08:15"}
	if err := store.Insert(ctx, visit); err != nil {
		t.Fatalf("check in: %v", err)
	}

	records, err := store.ListByMember(ctx, memberID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records=%d want 1", len(records))
	}
	if records[0].IsCheckedOut() {
		t.Fatalf("session already closed: %+v", records[0])
	}
	if got := records[0].DurationDisplay(); got != domain.NoCheckOutPlaceholder {
		t.Fatalf("open session duration=%q want %q", got, domain.NoCheckOutPlaceholder)
	}

	closed, err := store.CheckOut(ctx, memberID, "2026-03-05", "10:00")
	if err != nil {
		t.Fatalf("check out: %v", err)
	}
	if closed != 1 {
		t.Fatalf("closed=%d want 1", closed)
	}

	records, err = store.ListByMember(ctx, memberID)
	if err != nil {
		t.Fatalf("list after close: %v", err)
	}
	if got := records[0].DurationDisplay(); got != "1h 45m" {
		t.Fatalf("duration=%q want 1h 45m", got)
	}

	closed, err = store.CheckOut(ctx, memberID, "2026-03-05", "11:00")
	if err != nil {
		t.Fatalf("repeat check out: %v", err)
	}
	if closed != 0 {
		t.Fatalf("repeat closed=%d want 0", closed)
	}
}

// TestSheetForDateScoping verifies a trainer's sheet only includes their
// own roster while the unscoped sheet includes everyone.
func TestSheetForDateScoping(t *testing.T) {
	store, exec := newTestStore(t)
	ctx := context.Background()

	mine := seedMember(t, exec, "Mine", 7)
	theirs := seedMember(t, exec, "Theirs", 8)
	for _, id := range []int{mine, theirs} {
		if err := store.Insert(ctx, domain.Attendance{MemberID: id, Date: "2026-03-05", CheckIn: "09:00"}); err != nil {
			t.Fatalf("check in %d: %v", id, err)
		}
	}

	all, err := store.SheetForDate(ctx, "2026-03-05", 0)
	if err != nil {
		t.Fatalf("unscoped sheet: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unscoped rows=%d want 2", len(all))
	}

	scoped, err := store.SheetForDate(ctx, "2026-03-05", 7)
	if err != nil {
		t.Fatalf("scoped sheet: %v", err)
	}
	if len(scoped) != 1 || scoped[0].MemberName != "Mine" {
		t.Fatalf("scoped sheet=%+v want only Mine", scoped)
	}

	if got := store.CountForDateSilent(ctx, "2026-03-05"); got != 2 {
		t.Fatalf("count=%d want 2", got)
	}
	if got := store.CountForDateSilent(ctx, "2026-03-06"); got != 0 {
		t.Fatalf("empty day count=%d want 0", got)
	}
}
