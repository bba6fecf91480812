package payment

import (
	"context"
	"time"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/payment"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a payment store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// Insert appends a payment. The engine's trigger appends the audit row in
// the same transaction, so a failed insert leaves neither.
// PRE: p passed Validate
// POST: Payment and its audit row are committed together
func (s *SQLStore) Insert(ctx context.Context, p domain.Payment) error {
	ts := p.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return s.exec.Exec(ctx,
		"INSERT INTO Payment (MemberId, PackageId, Amount, Mode, TimeStamp) VALUES (?, ?, ?, ?, ?)",
		p.MemberID, p.PackageID, p.Amount, p.Mode, ts.Format("2006-01-02 15:04:05"))
}

// ListByMember lists a member's payments, newest first.
func (s *SQLStore) ListByMember(ctx context.Context, memberID int) ([]domain.Payment, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT PaymentId, MemberId, PackageId, Amount, Mode, TimeStamp FROM Payment WHERE MemberId = ? ORDER BY TimeStamp DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, domain.Payment{
			PaymentID: r.Int("PaymentId"),
			MemberID:  r.Int("MemberId"),
			PackageID: r.Int("PackageId"),
			Amount:    r.Float("Amount"),
			Mode:      r.String("Mode"),
			Timestamp: r.Time("TimeStamp"),
		})
	}
	return payments, nil
}

// History lists recent payments joined with member and package names.
func (s *SQLStore) History(ctx context.Context, limit int) ([]HistoryRow, error) {
	rows, err := s.exec.Query(ctx,
		`SELECT pay.PaymentId, m.Name AS MemberName, k.PackageName, pay.Amount, pay.Mode, pay.TimeStamp
		 FROM Payment pay
		 JOIN Member m ON m.MemberId = pay.MemberId
		 JOIN Package k ON k.PackageId = pay.PackageId
		 ORDER BY pay.TimeStamp DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	history := make([]HistoryRow, 0, len(rows))
	for _, r := range rows {
		history = append(history, HistoryRow{
			PaymentID:   r.Int("PaymentId"),
			MemberName:  r.String("MemberName"),
			PackageName: r.String("PackageName"),
			Amount:      r.Float("Amount"),
			Mode:        r.String("Mode"),
			Timestamp:   r.String("TimeStamp"),
		})
	}
	return history, nil
}

// RecentAuditSilent lists the latest audit rows beneath the payment form.
// POST: Never fails; degrades to an empty list
func (s *SQLStore) RecentAuditSilent(ctx context.Context, limit int) []domain.AuditRow {
	rows := s.exec.QuerySilent(ctx,
		"SELECT AuditId, PaymentId, MemberId, Amount, Action, LoggedAt FROM Payment_Audit ORDER BY AuditId DESC LIMIT ?",
		limit)
	audits := make([]domain.AuditRow, 0, len(rows))
	for _, r := range rows {
		audits = append(audits, domain.AuditRow{
			AuditID:   r.Int("AuditId"),
			PaymentID: r.Int("PaymentId"),
			MemberID:  r.Int("MemberId"),
			Amount:    r.Float("Amount"),
			Action:    r.String("Action"),
			LoggedAt:  r.Time("LoggedAt"),
		})
	}
	return audits
}
