package notice

import (
	"context"

	domain "gymtrack/internal/domain/notice"
)

// Store persists dashboard notices.
type Store interface {
	Insert(ctx context.Context, n domain.Notice) error
	// List returns all notices for the admin view, newest first.
	List(ctx context.Context) ([]domain.Notice, error)
	// PublishedSilent feeds the dashboard, degrading to empty.
	PublishedSilent(ctx context.Context, limit int) []domain.Notice
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}
