package trainer

import (
	"errors"
	"strings"
)

// Trainer holds state for the concept.
type Trainer struct {
	TrainerID   int
	TrainerName string
	Email       string
	PhoneNo     string
	Specialty   string
}

// Validate checks if the Trainer has valid data.
// PRE: Trainer struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.TrainerName) == "" {
		return errors.New("trainer name cannot be empty")
	}
	if t.Email != "" && !strings.Contains(t.Email, "@") {
		return errors.New("trainer email must be valid")
	}
	return nil
}
