package orchestrators

import (
	"context"
	"errors"
	"testing"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
	"gymtrack/internal/domain/membership"
	"gymtrack/internal/domain/payment"
)

// mockPaymentWriter implements PaymentWriteStore for testing.
type mockPaymentWriter struct {
	inserts []payment.Payment
}

func (m *mockPaymentWriter) Insert(_ context.Context, p payment.Payment) error {
	m.inserts = append(m.inserts, p)
	return nil
}

// mockPackageLookup implements PackageLookupStore for testing.
type mockPackageLookup struct {
	pkgs map[int]membership.Package
}

func (m *mockPackageLookup) GetByID(_ context.Context, id int) (membership.Package, error) {
	pkg, ok := m.pkgs[id]
	if !ok {
		return membership.Package{}, errors.New("not found")
	}
	return pkg, nil
}

func newPaymentFixture() (RecordPaymentDeps, *mockPaymentWriter) {
	payments := &mockPaymentWriter{}
	deps := RecordPaymentDeps{
		PaymentStore: payments,
		PackageStore: &mockPackageLookup{pkgs: map[int]membership.Package{
			1: {PackageID: 1, PackageName: "Monthly", Price: 49.0, DurationDays: 30},
		}},
		MemberStore: &mockMemberLookup{members: map[int]member.Member{
			100: {MemberID: 100, Name: "Mine", TrainerID: 1},
			200: {MemberID: 200, Name: "Theirs", TrainerID: 2},
		}},
	}
	return deps, payments
}

// TestExecuteRecordPayment_MemberSelfOnly verifies a member can pay for
// themselves but a mismatched member id is rejected before any write.
func TestExecuteRecordPayment_MemberSelfOnly(t *testing.T) {
	deps, payments := newPaymentFixture()
	self := identity.Member(100, "Mine")

	err := ExecuteRecordPayment(context.Background(), self, RecordPaymentInput{
		MemberID: 200, PackageID: 1, Mode: payment.ModeCash,
	}, deps)
	if !errors.Is(err, identity.ErrNotSelf) {
		t.Fatalf("err=%v want ErrNotSelf", err)
	}
	if len(payments.inserts) != 0 {
		t.Fatalf("mismatched member reached the store: %+v", payments.inserts)
	}

	err = ExecuteRecordPayment(context.Background(), self, RecordPaymentInput{
		MemberID: 100, PackageID: 1, Mode: payment.ModeCard,
	}, deps)
	if err != nil {
		t.Fatalf("self payment: %v", err)
	}
	if len(payments.inserts) != 1 {
		t.Fatalf("inserts=%d want 1", len(payments.inserts))
	}
	// Omitted amount charges the package price.
	if got := payments.inserts[0].Amount; got != 49.0 {
		t.Errorf("amount=%v want 49.0", got)
	}
}

// TestExecuteRecordPayment_TrainerBlocked verifies trainers cannot record
// payments, not even for their own roster.
func TestExecuteRecordPayment_TrainerBlocked(t *testing.T) {
	deps, payments := newPaymentFixture()

	err := ExecuteRecordPayment(context.Background(), identity.Trainer(1, "Coach"), RecordPaymentInput{
		MemberID: 100, PackageID: 1, Mode: payment.ModeCash,
	}, deps)
	if !errors.Is(err, identity.ErrNotAuthorized) {
		t.Fatalf("err=%v want ErrNotAuthorized", err)
	}
	if len(payments.inserts) != 0 {
		t.Fatalf("trainer payment reached the store: %+v", payments.inserts)
	}
}

// TestExecuteRecordPayment_AdminExplicitAmount verifies admin records for
// any member and a submitted amount overrides the package price.
func TestExecuteRecordPayment_AdminExplicitAmount(t *testing.T) {
	deps, payments := newPaymentFixture()

	err := ExecuteRecordPayment(context.Background(), identity.Admin(), RecordPaymentInput{
		MemberID: 200, PackageID: 1, Amount: 25.0, Mode: payment.ModeOnline,
	}, deps)
	if err != nil {
		t.Fatalf("admin payment: %v", err)
	}
	if len(payments.inserts) != 1 || payments.inserts[0].Amount != 25.0 {
		t.Fatalf("inserts=%+v want one payment of 25.0", payments.inserts)
	}
}
