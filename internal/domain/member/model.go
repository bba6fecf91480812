package member

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Gender values accepted by the registration form.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Member holds state for the concept. Optional fields are empty strings or
// zero ids; stores persist those as NULL.
type Member struct {
	MemberID  int
	Name      string
	Email     string
	PhoneNo   string
	Address   string
	DoB       string // YYYY-MM-DD
	JoinDate  string // YYYY-MM-DD
	Gender    string
	PackageID int // 0 = no package
	TrainerID int // 0 = no trainer
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name must not be empty; Email, when present, must contain '@'
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("member name cannot be empty")
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	if m.Email != "" && !strings.Contains(m.Email, "@") {
		return errors.New("member email must be valid")
	}
	if m.Gender != "" && m.Gender != GenderMale && m.Gender != GenderFemale && m.Gender != GenderOther {
		return errors.New("gender must be 'M', 'F' or 'O'")
	}
	if m.PackageID < 0 || m.TrainerID < 0 {
		return errors.New("package and trainer ids cannot be negative")
	}
	return nil
}

// HasTrainer returns true if the member is assigned to a trainer.
// INVARIANT: Member fields are not mutated
func (m *Member) HasTrainer() bool {
	return m.TrainerID != 0
}

// HasPackage returns true if the member references a pricing package.
// INVARIANT: Member fields are not mutated
func (m *Member) HasPackage() bool {
	return m.PackageID != 0
}
