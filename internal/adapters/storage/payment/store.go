package payment

import (
	"context"

	domain "gymtrack/internal/domain/payment"
)

// HistoryRow is a payment joined with member and package names for display.
type HistoryRow struct {
	PaymentID   int
	MemberName  string
	PackageName string
	Amount      float64
	Mode        string
	Timestamp   string
}

// Store persists Payment state. Payments are append-only; audit rows are
// engine-maintained and only ever read here.
type Store interface {
	Insert(ctx context.Context, p domain.Payment) error
	ListByMember(ctx context.Context, memberID int) ([]domain.Payment, error)
	// History lists recent payments joined with names, newest first.
	History(ctx context.Context, limit int) ([]HistoryRow, error)
	// RecentAuditSilent lists the latest audit rows, degrading to empty.
	RecentAuditSilent(ctx context.Context, limit int) []domain.AuditRow
}
