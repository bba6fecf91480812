package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gymtrack/internal/adapters/email"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
)

// MemberWriteStore defines the member persistence needed by the roster
// orchestrators.
type MemberWriteStore interface {
	GetByID(ctx context.Context, id int) (member.Member, error)
	Create(ctx context.Context, m member.Member) error
	Update(ctx context.Context, m member.Member) error
	Delete(ctx context.Context, id int) error
}

// CreateMemberInput carries input for member creation.
type CreateMemberInput struct {
	Member member.Member
}

// ManageMemberDeps holds dependencies for the roster orchestrators.
type ManageMemberDeps struct {
	MemberStore  MemberWriteStore
	EmailSender  email.Sender // optional: nil skips the welcome email
	EmailFrom    string
	EmailReplyTo string
}

// ExecuteCreateMember validates and persists a new member. A welcome email
// is attempted when the member has an address; delivery failure never fails
// the creation.
// PRE: principal can manage the roster
// POST: Member row exists; welcome email attempted best-effort
func ExecuteCreateMember(ctx context.Context, principal identity.Principal, input CreateMemberInput, deps ManageMemberDeps) error {
	if !principal.CanManageRoster() {
		return identity.ErrNotAuthorized
	}

	m := input.Member
	if m.JoinDate == "" {
		m.JoinDate = time.Now().Format("2006-01-02")
	}
	// A trainer always signs members onto their own roster.
	if principal.Role == identity.RoleTrainer {
		m.TrainerID = principal.UserID
	}
	if err := m.Validate(); err != nil {
		return err
	}

	if err := deps.MemberStore.Create(ctx, m); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	slog.Info("roster_event", "event", "member_created", "name", m.Name, "by", principal.UserName)

	if deps.EmailSender != nil && m.Email != "" {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{m.Email},
			From:    deps.EmailFrom,
			ReplyTo: deps.EmailReplyTo,
			Subject: "Welcome to the gym",
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your membership starts on %s. See you on the floor!</p>",
				m.Name, m.JoinDate),
		})
		if err != nil {
			slog.Warn("welcome_email_failed", "email", m.Email, "error", err.Error())
		}
	}
	return nil
}

// UpdateMemberInput carries input for member updates.
type UpdateMemberInput struct {
	Member member.Member
}

// ExecuteUpdateMember validates scope and persists changed member fields.
// PRE: input.Member.MemberID > 0
// POST: Member row reflects the submitted fields
func ExecuteUpdateMember(ctx context.Context, principal identity.Principal, input UpdateMemberInput, deps ManageMemberDeps) error {
	existing, err := deps.MemberStore.GetByID(ctx, input.Member.MemberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(existing.MemberID, existing.TrainerID); err != nil {
		return err
	}

	m := input.Member
	// A trainer cannot reassign a member off their roster.
	if principal.Role == identity.RoleTrainer {
		m.TrainerID = principal.UserID
	}
	if err := m.Validate(); err != nil {
		return err
	}

	if err := deps.MemberStore.Update(ctx, m); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	slog.Info("roster_event", "event", "member_updated", "member_id", m.MemberID, "by", principal.UserName)
	return nil
}

// ExecuteDeleteMember removes a member and, through the schema's cascades,
// their payments, attendance and enrollments.
// PRE: principal is admin or the member's own trainer
func ExecuteDeleteMember(ctx context.Context, principal identity.Principal, memberID int, deps ManageMemberDeps) error {
	if !principal.CanManageRoster() {
		return identity.ErrNotAuthorized
	}
	existing, err := deps.MemberStore.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if err := principal.CanActOnMember(existing.MemberID, existing.TrainerID); err != nil {
		return err
	}

	if err := deps.MemberStore.Delete(ctx, memberID); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	slog.Info("roster_event", "event", "member_deleted", "member_id", memberID, "by", principal.UserName)
	return nil
}
