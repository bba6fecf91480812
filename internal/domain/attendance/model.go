package attendance

import (
	"errors"
	"fmt"
	"time"
)

// NoCheckOutPlaceholder is rendered when a member has not checked out yet.
const NoCheckOutPlaceholder = "-"

const timeLayout = "15:04"

// Attendance is a per-member per-date check-in/check-out pair.
// Duration is derived, never stored.
type Attendance struct {
	AttendanceID int
	MemberID     int
	Date         string // YYYY-MM-DD
	CheckIn      string // HH:MM, 24h
	CheckOut     string // HH:MM, empty while still checked in
}

// Validate checks if the Attendance has valid data.
// PRE: Attendance struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: CheckOut, when present, must not precede CheckIn
func (a *Attendance) Validate() error {
	if a.MemberID <= 0 {
		return errors.New("attendance must be associated with a member")
	}
	if a.Date == "" {
		return errors.New("attendance date must be set")
	}
	in, err := time.Parse(timeLayout, a.CheckIn)
	if err != nil {
		return errors.New("check-in time must be HH:MM")
	}
	if a.CheckOut != "" {
		out, err := time.Parse(timeLayout, a.CheckOut)
		if err != nil {
			return errors.New("check-out time must be HH:MM")
		}
		if out.Before(in) {
			return errors.New("check-out time cannot be before check-in time")
		}
	}
	return nil
}

// IsCheckedOut returns true if the member has checked out.
// INVARIANT: Attendance fields are not mutated
func (a *Attendance) IsCheckedOut() bool {
	return a.CheckOut != ""
}

// DurationDisplay formats the session duration as "Hh Mm", e.g. "1h 45m".
// An absent check-out yields the placeholder "-". Unparsable times also
// yield the placeholder so a bad row never breaks the page.
// INVARIANT: Pure; no side effects
func (a *Attendance) DurationDisplay() string {
	if !a.IsCheckedOut() {
		return NoCheckOutPlaceholder
	}
	in, err := time.Parse(timeLayout, a.CheckIn)
	if err != nil {
		return NoCheckOutPlaceholder
	}
	out, err := time.Parse(timeLayout, a.CheckOut)
	if err != nil || out.Before(in) {
		return NoCheckOutPlaceholder
	}
	minutes := int(out.Sub(in).Minutes())
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
