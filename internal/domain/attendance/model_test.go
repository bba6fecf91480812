package attendance_test

import (
	"testing"

	"gymtrack/internal/domain/attendance"
)

// TestDurationDisplay verifies the "Hh Mm" formatting and the placeholder.
func TestDurationDisplay(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     string
	}{
		{"one hour forty five", "09:00", "10:45", "1h 45m"},
		{"absent check-out", "09:00", "", "-"},
		{"exact hour", "08:00", "09:00", "1h 0m"},
		{"under an hour", "18:10", "18:55", "0h 45m"},
		{"zero duration", "07:30", "07:30", "0h 0m"},
		{"long session", "06:00", "09:05", "3h 5m"},
		{"unparsable check-in", "9am", "10:00", "-"},
		{"check-out before check-in", "10:00", "09:00", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: tt.checkIn, CheckOut: tt.checkOut}
			if got := a.DurationDisplay(); got != tt.want {
				t.Fatalf("DurationDisplay()=%q want %q", got, tt.want)
			}
		})
	}
}

// TestAttendanceValidation tests validation of Attendance.
func TestAttendanceValidation(t *testing.T) {
	tests := []struct {
		name    string
		att     attendance.Attendance
		wantErr bool
	}{
		{"valid open session", attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: "09:00"}, false},
		{"valid closed session", attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: "09:00", CheckOut: "10:45"}, false},
		{"missing member", attendance.Attendance{Date: "2026-03-15", CheckIn: "09:00"}, true},
		{"missing date", attendance.Attendance{MemberID: 1, CheckIn: "09:00"}, true},
		{"bad check-in", attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: "morning"}, true},
		{"check-out before check-in", attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: "10:00", CheckOut: "09:00"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.att.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

// TestIsCheckedOut verifies check-out detection.
func TestIsCheckedOut(t *testing.T) {
	a := attendance.Attendance{MemberID: 1, Date: "2026-03-15", CheckIn: "09:00"}
	if a.IsCheckedOut() {
		t.Fatal("open session must not be checked out")
	}
	a.CheckOut = "10:00"
	if !a.IsCheckedOut() {
		t.Fatal("closed session must be checked out")
	}
}
