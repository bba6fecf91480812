package membership

import "time"

// Membership status values derived from the end date.
const (
	StatusActive       = "Active"
	StatusExpired      = "Expired"
	StatusNoMembership = "No Membership"
	StatusUnknown      = "Unknown"
)

const dateLayout = "2006-01-02"

// StatusFor derives the membership status from an end date string against
// the given reference day. A pure transform on an already-fetched row:
// empty end date means no membership was ever paid for, an end date on or
// after today is active, anything earlier is expired, and an unparsable
// date reports Unknown rather than guessing.
// INVARIANT: No side effects; today's time-of-day is ignored
func StatusFor(endDate string, today time.Time) string {
	if endDate == "" {
		return StatusNoMembership
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return StatusUnknown
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(day) {
		return StatusExpired
	}
	return StatusActive
}
