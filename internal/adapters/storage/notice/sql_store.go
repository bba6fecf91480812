package notice

import (
	"context"
	"time"

	"gymtrack/internal/adapters/storage"
	domain "gymtrack/internal/domain/notice"
)

const noticeColumns = "NoticeId, Title, Content, CreatedBy, Published, CreatedAt"

// SQLStore implements Store through the query executor.
type SQLStore struct {
	exec *storage.Executor
}

// NewSQLStore creates a notice store over the executor.
func NewSQLStore(exec *storage.Executor) *SQLStore {
	return &SQLStore{exec: exec}
}

// Insert writes a notice.
// PRE: n passed Validate and n.ID is set
func (s *SQLStore) Insert(ctx context.Context, n domain.Notice) error {
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	published := 0
	if n.Published {
		published = 1
	}
	return s.exec.Exec(ctx,
		"INSERT INTO Notice ("+noticeColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.Title, n.Content, n.CreatedBy, published, createdAt.Format("2006-01-02 15:04:05"))
}

func (s *SQLStore) List(ctx context.Context) ([]domain.Notice, error) {
	rows, err := s.exec.Query(ctx,
		"SELECT "+noticeColumns+" FROM Notice ORDER BY CreatedAt DESC")
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

// PublishedSilent lists the latest published notices for dashboards.
// POST: Never fails; degrades to an empty list
func (s *SQLStore) PublishedSilent(ctx context.Context, limit int) []domain.Notice {
	rows := s.exec.QuerySilent(ctx,
		"SELECT "+noticeColumns+" FROM Notice WHERE Published = 1 ORDER BY CreatedAt DESC LIMIT ?",
		limit)
	return fromRows(rows)
}

func (s *SQLStore) SetPublished(ctx context.Context, id string, published bool) error {
	flag := 0
	if published {
		flag = 1
	}
	return s.exec.Exec(ctx,
		"UPDATE Notice SET Published = ? WHERE NoticeId = ?", flag, id)
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	return s.exec.Exec(ctx, "DELETE FROM Notice WHERE NoticeId = ?", id)
}

func fromRows(rows []storage.Row) []domain.Notice {
	notices := make([]domain.Notice, 0, len(rows))
	for _, r := range rows {
		notices = append(notices, domain.Notice{
			ID:        r.String("NoticeId"),
			Title:     r.String("Title"),
			Content:   r.String("Content"),
			CreatedBy: r.String("CreatedBy"),
			Published: r.Int("Published") == 1,
			CreatedAt: r.Time("CreatedAt"),
		})
	}
	return notices
}
