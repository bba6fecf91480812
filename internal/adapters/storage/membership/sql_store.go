package membership

import (
	"context"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/membership"
)

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a package store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// GetByID retrieves a Package by its id.
// POST: Returns the package or ErrNotFound
func (s *SQLStore) GetByID(ctx context.Context, id int) (domain.Package, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT PackageId, PackageName, Price, DurationDays FROM Package WHERE PackageId = ?", id)
	if err != nil {
		return domain.Package{}, err
	}
	if len(rows) == 0 {
		return domain.Package{}, ErrNotFound
	}
	return fromRow(rows[0]), nil
}

// List retrieves all packages ordered by name.
func (s *SQLStore) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT PackageId, PackageName, Price, DurationDays FROM Package ORDER BY PackageName")
	if err != nil {
		return nil, err
	}
	packages := make([]domain.Package, 0, len(rows))
	for _, r := range rows {
		packages = append(packages, fromRow(r))
	}
	return packages, nil
}

// Create inserts a new package.
// PRE: p passed Validate
func (s *SQLStore) Create(ctx context.Context, p domain.Package) error {
	return s.exec.Exec(ctx,
		"INSERT INTO Package (PackageName, Price, DurationDays) VALUES (?, ?, ?)",
		p.PackageName, p.Price, p.DurationDays)
}

// Update rewrites every editable column of an existing package.
func (s *SQLStore) Update(ctx context.Context, p domain.Package) error {
	return s.exec.Exec(ctx,
		"UPDATE Package SET PackageName=?, Price=?, DurationDays=? WHERE PackageId=?",
		p.PackageName, p.Price, p.DurationDays, p.PackageID)
}

// Delete removes a package.
func (s *SQLStore) Delete(ctx context.Context, id int) error {
	return s.exec.Exec(ctx, "DELETE FROM Package WHERE PackageId = ?", id)
}

// OptionsSilent lists id/name/price rows for forms; degrades to empty.
func (s *SQLStore) OptionsSilent(ctx context.Context) []Option {
	rows := s.exec.QuerySilent(ctx,
		"SELECT PackageId, PackageName, Price FROM Package ORDER BY PackageName")
	opts := make([]Option, 0, len(rows))
	for _, r := range rows {
		opts = append(opts, Option{ID: r.Int("PackageId"), Name: r.String("PackageName"), Price: r.Float("Price")})
	}
	return opts
}

// EndDate derives the membership end date from the latest payment plus the
// paid package's duration. The date arithmetic runs here rather than in SQL
// so the statement stays portable across engines.
// POST: Returns "" when the member has never paid
func (s *SQLStore) EndDate(ctx context.Context, memberID int) (string, error) {
	rows, err := s.exec.Query(ctx,
		`SELECT p.TimeStamp, k.DurationDays
		 FROM Payment p
		 JOIN Package k ON k.PackageId = p.PackageId
		 WHERE p.MemberId = ?
		 ORDER BY p.TimeStamp DESC
		 LIMIT 1`, memberID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	paidAt := rows[0].Time("TimeStamp")
	if paidAt.IsZero() {
		return "", nil
	}
	days := rows[0].Int("DurationDays")
	return paidAt.AddDate(0, 0, days).Format("2006-01-02"), nil
}

func fromRow(r storage.Row) domain.Package {
	return domain.Package{
		PackageID:    r.Int("PackageId"),
		PackageName:  r.String("PackageName"),
		Price:        r.Float("Price"),
		DurationDays: r.Int("DurationDays"),
	}
}
