package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/membership"
	"gymtrack/internal/domain/payment"
)

// PaymentWriteStore defines the payment persistence needed by RecordPayment.
type PaymentWriteStore interface {
	Insert(ctx context.Context, p payment.Payment) error
}

// PackageLookupStore resolves the paid package for amount defaulting.
type PackageLookupStore interface {
	GetByID(ctx context.Context, id int) (membership.Package, error)
}

// RecordPaymentInput carries input for the payment orchestrator.
type RecordPaymentInput struct {
	MemberID  int
	PackageID int
	Amount    float64 // 0 = charge the package price
	Mode      string
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	PaymentStore PaymentWriteStore
	PackageStore PackageLookupStore
	MemberStore  MemberLookupStore
}

// ExecuteRecordPayment records a membership payment. The audit row is
// appended by the persistence layer in the same transaction.
// Payments come from the member themselves or the front desk, never a
// trainer.
// PRE: principal is admin or the paying member
// POST: Payment and audit row committed; membership end date moves forward
func ExecuteRecordPayment(ctx context.Context, principal identity.Principal, input RecordPaymentInput, deps RecordPaymentDeps) error {
	if !principal.IsAdmin() && principal.Role != identity.RoleMember {
		return identity.ErrNotAuthorized
	}
	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(m.MemberID, m.TrainerID); err != nil {
		return err
	}

	pkg, err := deps.PackageStore.GetByID(ctx, input.PackageID)
	if err != nil {
		return err
	}
	amount := input.Amount
	if amount == 0 {
		amount = pkg.Price
	}

	p := payment.Payment{
		MemberID:  input.MemberID,
		PackageID: input.PackageID,
		Amount:    amount,
		Mode:      input.Mode,
		Timestamp: time.Now(),
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := deps.PaymentStore.Insert(ctx, p); err != nil {
		return err
	}
	slog.Info("payment_event", "event", "payment_recorded",
		"member_id", input.MemberID, "package_id", input.PackageID,
		"amount", amount, "mode", p.Mode, "by", principal.UserName)
	return nil
}
