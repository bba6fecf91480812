package member

import (
	"context"

	"gymtrack/internal/adapters/storage"
	"gymtrack/internal/domain/identity"
	domain "gymtrack/internal/domain/member"
)

const memberColumns = "m.MemberId, m.Name, m.Email, m.PhoneNo, m.Address, m.DoB, m.JoinDate, m.Gender, m.PackageId, m.TrainerId"

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a member store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// GetByID retrieves a Member by its id.
// PRE: id > 0
// POST: Returns the member or ErrNotFound
func (s *SQLStore) GetByID(ctx context.Context, id int) (domain.Member, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT "+memberColumns+" FROM Member m WHERE m.MemberId = ?", id)
	if err != nil {
		return domain.Member{}, err
	}
	if len(rows) == 0 {
		return domain.Member{}, ErrNotFound
	}
	return fromRow(rows[0]), nil
}

// List retrieves members within the principal's scope, ordered by id.
// Admin sees every row, a trainer its own roster, a member itself.
// POST: Returns only rows the scope permits
func (s *SQLStore) List(ctx context.Context, scope identity.Principal) ([]domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM Member m"
	clause, args := scope.ScopeFilter()
	if clause != "" {
		query += " WHERE " + clause
	}
	query += " ORDER BY m.MemberId"

	rows, err := s.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	members := make([]domain.Member, 0, len(rows))
	for _, r := range rows {
		members = append(members, fromRow(r))
	}
	return members, nil
}

// Create inserts a new member. Omitted optional fields are stored as NULL.
// PRE: m passed Validate
// POST: Row is committed
func (s *SQLStore) Create(ctx context.Context, m domain.Member) error {
	return s.exec.Exec(ctx,
		"INSERT INTO Member (Name, Email, PhoneNo, Address, DoB, JoinDate, Gender, PackageId, TrainerId) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.Name,
		nullIfEmpty(m.Email),
		nullIfEmpty(m.PhoneNo),
		nullIfEmpty(m.Address),
		nullIfEmpty(m.DoB),
		nullIfEmpty(m.JoinDate),
		nullIfEmpty(m.Gender),
		nullIfZero(m.PackageID),
		nullIfZero(m.TrainerID),
	)
}

// Update rewrites every editable column of an existing member.
// PRE: m.MemberID identifies an existing row
// POST: Row is committed
func (s *SQLStore) Update(ctx context.Context, m domain.Member) error {
	return s.exec.Exec(ctx,
		"UPDATE Member SET Name=?, Email=?, PhoneNo=?, Address=?, DoB=?, JoinDate=?, Gender=?, PackageId=?, TrainerId=? WHERE MemberId=?",
		m.Name,
		nullIfEmpty(m.Email),
		nullIfEmpty(m.PhoneNo),
		nullIfEmpty(m.Address),
		nullIfEmpty(m.DoB),
		nullIfEmpty(m.JoinDate),
		nullIfEmpty(m.Gender),
		nullIfZero(m.PackageID),
		nullIfZero(m.TrainerID),
		m.MemberID,
	)
}

// Delete removes a member; dependent rows cascade in the engine.
// PRE: id > 0
// POST: Row is removed
func (s *SQLStore) Delete(ctx context.Context, id int) error {
	return s.exec.Exec(ctx, "DELETE FROM Member WHERE MemberId = ?", id)
}

// OptionsSilent lists id/name pairs within scope for dropdowns.
// POST: Never fails; degrades to an empty list
func (s *SQLStore) OptionsSilent(ctx context.Context, scope identity.Principal) []Option {
	query := "SELECT m.MemberId, m.Name FROM Member m"
	clause, args := scope.ScopeFilter()
	if clause != "" {
		query += " WHERE " + clause
	}
	query += " ORDER BY m.Name"

	rows := s.exec.QuerySilent(ctx, query, args...)
	opts := make([]Option, 0, len(rows))
	for _, r := range rows {
		opts = append(opts, Option{ID: r.Int("MemberId"), Name: r.String("Name")})
	}
	return opts
}

func fromRow(r storage.Row) domain.Member {
	return domain.Member{
		MemberID:  r.Int("MemberId"),
		Name:      r.String("Name"),
		Email:     r.String("Email"),
		PhoneNo:   r.String("PhoneNo"),
		Address:   r.String("Address"),
		DoB:       r.Date("DoB"),
		JoinDate:  r.Date("JoinDate"),
		Gender:    r.String("Gender"),
		PackageID: r.Int("PackageId"),
		TrainerID: r.Int("TrainerId"),
	}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
