package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymtrack/internal/domain/attendance"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
)

// mockAttendanceStore implements AttendanceWriteStore for testing.
type mockAttendanceStore struct {
	records []attendance.Attendance
}

func (m *mockAttendanceStore) Insert(_ context.Context, a attendance.Attendance) error {
	m.records = append(m.records, a)
	return nil
}

func (m *mockAttendanceStore) CheckOut(_ context.Context, memberID int, date, checkOut string) (int, error) {
	closed := 0
	for i, r := range m.records {
		if r.MemberID == memberID && r.Date == date && !r.IsCheckedOut() {
			m.records[i].CheckOut = checkOut
			closed++
		}
	}
	return closed, nil
}

func (m *mockAttendanceStore) ListByMember(_ context.Context, memberID int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range m.records {
		if r.MemberID == memberID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newAttendanceFixture() (RecordAttendanceDeps, *mockAttendanceStore) {
	store := &mockAttendanceStore{}
	members := &mockMemberLookup{
		members: map[int]member.Member{
			100: {MemberID: 100, Name: "Mine", TrainerID: 1},
			200: {MemberID: 200, Name: "Theirs", TrainerID: 2},
		},
	}
	return RecordAttendanceDeps{AttendanceStore: store, MemberStore: members}, store
}

var attendanceNow = time.Date(2026, 3, 5, 8, 15, 0, 0, time.UTC)

// TestExecuteCheckIn_OncePerDay verifies a second check-in on the same day
// is rejected until the first session is closed.
func TestExecuteCheckIn_OncePerDay(t *testing.T) {
	deps, store := newAttendanceFixture()
	admin := identity.Admin()
	input := RecordAttendanceInput{MemberID: 100, Now: attendanceNow}

	if err := ExecuteCheckIn(context.Background(), admin, input, deps); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if len(store.records) != 1 || store.records[0].CheckIn != "08:15" {
		t.Fatalf("records=%+v want one 08:15 check-in", store.records)
	}

	err := ExecuteCheckIn(context.Background(), admin, input, deps)
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("second check-in err=%v want ErrAlreadyCheckedIn", err)
	}

	out := RecordAttendanceInput{MemberID: 100, Now: attendanceNow.Add(2 * time.Hour)}
	if err := ExecuteCheckOut(context.Background(), admin, out, deps); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if store.records[0].CheckOut != "10:15" {
		t.Fatalf("checkout=%q want 10:15", store.records[0].CheckOut)
	}

	// A new session on the same day is allowed once the old one closed.
	later := RecordAttendanceInput{MemberID: 100, Now: attendanceNow.Add(6 * time.Hour)}
	if err := ExecuteCheckIn(context.Background(), admin, later, deps); err != nil {
		t.Fatalf("evening check-in: %v", err)
	}
}

// TestExecuteCheckOut_NoOpenSession verifies checking out without an open
// session fails.
func TestExecuteCheckOut_NoOpenSession(t *testing.T) {
	deps, _ := newAttendanceFixture()
	err := ExecuteCheckOut(context.Background(), identity.Admin(), RecordAttendanceInput{MemberID: 100, Now: attendanceNow}, deps)
	if !errors.Is(err, ErrNoOpenSession) {
		t.Fatalf("err=%v want ErrNoOpenSession", err)
	}
}

// TestExecuteCheckIn_Scope verifies trainer and member scope rules apply
// to attendance.
func TestExecuteCheckIn_Scope(t *testing.T) {
	deps, store := newAttendanceFixture()
	input := RecordAttendanceInput{MemberID: 200, Now: attendanceNow}

	err := ExecuteCheckIn(context.Background(), identity.Trainer(1, "Coach"), input, deps)
	if !errors.Is(err, identity.ErrNotMyMember) {
		t.Fatalf("trainer err=%v want ErrNotMyMember", err)
	}
	err = ExecuteCheckIn(context.Background(), identity.Member(100, "Mine"), input, deps)
	if !errors.Is(err, identity.ErrNotSelf) {
		t.Fatalf("member err=%v want ErrNotSelf", err)
	}
	if len(store.records) != 0 {
		t.Fatalf("denied check-ins reached the store: %+v", store.records)
	}
}
