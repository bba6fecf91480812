package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/notice"
)

// NoticeWriteStore defines the notice persistence needed here.
type NoticeWriteStore interface {
	Insert(ctx context.Context, n notice.Notice) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

// PostNoticeInput carries input for the notice orchestrator.
type PostNoticeInput struct {
	Title   string
	Content string // markdown
	Publish bool
}

// ManageNoticeDeps holds dependencies for the notice orchestrators.
type ManageNoticeDeps struct {
	NoticeStore NoticeWriteStore
}

// ExecutePostNotice validates and stores an announcement. Admin only.
// POST: Notice exists; published notices appear on dashboards
func ExecutePostNotice(ctx context.Context, principal identity.Principal, input PostNoticeInput, deps ManageNoticeDeps) (string, error) {
	if !principal.IsAdmin() {
		return "", identity.ErrNotAuthorized
	}

	n := notice.Notice{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedBy: principal.UserName,
		Published: input.Publish,
		CreatedAt: time.Now(),
	}
	if err := n.Validate(); err != nil {
		return "", err
	}
	if err := deps.NoticeStore.Insert(ctx, n); err != nil {
		return "", err
	}
	slog.Info("admin_event", "event", "notice_posted", "notice_id", n.ID, "published", n.Published)
	return n.ID, nil
}

// ExecuteSetNoticePublished flips a notice's published flag. Admin only.
func ExecuteSetNoticePublished(ctx context.Context, principal identity.Principal, id string, published bool, deps ManageNoticeDeps) error {
	if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}
	if err := deps.NoticeStore.SetPublished(ctx, id, published); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "notice_published_set", "notice_id", id, "published", published)
	return nil
}

// ExecuteDeleteNotice removes a notice. Admin only.
func ExecuteDeleteNotice(ctx context.Context, principal identity.Principal, id string, deps ManageNoticeDeps) error {
	if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}
	if err := deps.NoticeStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "notice_deleted", "notice_id", id)
	return nil
}
