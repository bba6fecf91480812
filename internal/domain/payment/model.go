package payment

import (
	"errors"
	"time"
)

// Payment mode values accepted by the payment form.
const (
	ModeCash   = "Cash"
	ModeCard   = "Card"
	ModeOnline = "Online"
)

// ValidModes contains all accepted payment modes.
var ValidModes = []string{ModeCash, ModeCard, ModeOnline}

// Payment records an amount/mode/timestamp for a Member+Package.
// Payments are append-only: never edited, only audited.
type Payment struct {
	PaymentID int
	MemberID  int
	PackageID int
	Amount    float64
	Mode      string
	Timestamp time.Time
}

// AuditRow is the persistence-maintained audit record produced for each
// Payment. Read-only from the application's point of view.
type AuditRow struct {
	AuditID   int
	PaymentID int
	MemberID  int
	Amount    float64
	Action    string
	LoggedAt  time.Time
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if p.MemberID <= 0 {
		return errors.New("payment must be associated with a member")
	}
	if p.PackageID <= 0 {
		return errors.New("payment must reference a package")
	}
	if p.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if !isValidMode(p.Mode) {
		return errors.New("payment mode must be Cash, Card or Online")
	}
	return nil
}

func isValidMode(mode string) bool {
	for _, m := range ValidModes {
		if m == mode {
			return true
		}
	}
	return false
}
