package workout

import (
	"errors"
	"strings"
)

// Tracker status values.
const (
	StatusAssigned  = "Assigned"
	StatusCompleted = "Completed"
)

// Plan is a workout plan authored by a trainer.
type Plan struct {
	PlanID        int
	Goal          string
	DurationWeeks int
	TrainerID     int
}

// Enrollment links a member to a plan (many-to-many association).
type Enrollment struct {
	MemberID   int
	PlanID     int
	EnrolledOn string // YYYY-MM-DD
}

// TrackerEntry is a per-member progress row against an enrolled plan.
type TrackerEntry struct {
	TrackerID int
	MemberID  int
	PlanID    int
	Status    string
}

// Validate checks if the Plan has valid data.
// PRE: Plan struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Goal) == "" {
		return errors.New("plan goal cannot be empty")
	}
	if p.DurationWeeks <= 0 {
		return errors.New("plan duration must be positive")
	}
	if p.TrainerID <= 0 {
		return errors.New("plan must be authored by a trainer")
	}
	return nil
}

// IsCompleted returns true if the tracker entry is completed.
// INVARIANT: TrackerEntry fields are not mutated
func (e *TrackerEntry) IsCompleted() bool {
	return e.Status == StatusCompleted
}
