// Package provision creates and privileges database-level principals.
//
// GRANT/REVOKE syntax cannot bind identifiers, so the principal name and
// host scope are interpolated into the administrative statements. That is
// the single sanctioned exception to parameter binding in this codebase,
// and it is guarded by a strict allow-list on identifier characters.
// Never generalize this pattern elsewhere.
package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gymtrack/internal/adapters/storage"
)

// Role tags accepted by the provisioning form.
const (
	RoleTagAdmin       = "admin"
	RoleTagAppUser     = "app_user"
	RoleTagTrainerUser = "trainer_user"
)

// Domain errors
var (
	ErrBadIdentifier = errors.New("principal name may only contain letters, digits and underscores")
	ErrBadHost       = errors.New("host scope may only contain letters, digits, '.', '%', '-' and '_'")
	ErrBadRoleTag    = errors.New("role tag must be admin, app_user or trainer_user")
	ErrEmptySecret   = errors.New("principal secret cannot be empty")
)

// Request describes one principal to create or update.
type Request struct {
	Username string
	Secret   string
	RoleTag  string
	Host     string // defaults to "%"
}

// Provisioner runs the create/revoke/grant sequence through the executor.
type Provisioner struct {
	exec   *storage.Executor
	dbName string
}

// NewProvisioner creates a Provisioner granting on the given database.
func NewProvisioner(exec *storage.Executor, dbName string) *Provisioner {
	return &Provisioner{exec: exec, dbName: dbName}
}

// Apply creates the principal if absent, revokes existing privileges
// best-effort, grants the fixed set for the role tag and flushes.
// PRE: req passed Validate
// POST: Principal exists with exactly the role tag's privileges
func (p *Provisioner) Apply(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	host := req.Host
	if host == "" {
		host = "%"
	}
	principal := fmt.Sprintf("`%s`@`%s`", req.Username, host)

	// Secret is a data value: bound, never interpolated.
	create := fmt.Sprintf("CREATE USER IF NOT EXISTS %s IDENTIFIED BY ?", principal)
	if err := p.exec.Exec(ctx, create, req.Secret); err != nil {
		return fmt.Errorf("create principal: %w", err)
	}

	// Best-effort: the principal may be brand new and hold nothing to revoke.
	revoke := fmt.Sprintf("REVOKE ALL PRIVILEGES, GRANT OPTION FROM %s", principal)
	if err := p.exec.Exec(ctx, revoke); err != nil {
		slog.Warn("provision_revoke_skipped", "principal", req.Username, "error", err.Error())
	}

	grant := fmt.Sprintf("GRANT %s ON `%s`.* TO %s", privilegesFor(req.RoleTag), p.dbName, principal)
	if err := p.exec.Exec(ctx, grant); err != nil {
		return fmt.Errorf("grant privileges: %w", err)
	}

	if err := p.exec.Exec(ctx, "FLUSH PRIVILEGES"); err != nil {
		return fmt.Errorf("flush privileges: %w", err)
	}

	slog.Info("provision_applied", "principal", req.Username, "host", host, "role_tag", req.RoleTag)
	return nil
}

// Validate checks the request against the identifier allow-lists.
// POST: Returns nil only when every interpolated part is safe
func (r Request) Validate() error {
	if !validIdentifier(r.Username) {
		return ErrBadIdentifier
	}
	if r.Host != "" && !validHost(r.Host) {
		return ErrBadHost
	}
	if r.Secret == "" {
		return ErrEmptySecret
	}
	switch r.RoleTag {
	case RoleTagAdmin, RoleTagAppUser, RoleTagTrainerUser:
		return nil
	}
	return ErrBadRoleTag
}

// privilegesFor maps a role tag to its fixed privilege set.
func privilegesFor(roleTag string) string {
	switch roleTag {
	case RoleTagAdmin:
		return "ALL PRIVILEGES"
	case RoleTagAppUser:
		return "SELECT, INSERT, UPDATE, DELETE, EXECUTE"
	default: // trainer_user: read plus routine execution
		return "SELECT, EXECUTE"
	}
}

// validIdentifier allows [A-Za-z0-9_]+ only.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isWordChar(c) {
			return false
		}
	}
	return true
}

// validHost additionally allows '.', '%' and '-' for host patterns.
func validHost(s string) bool {
	for _, c := range s {
		if !isWordChar(c) && !strings.ContainsRune(".%-", c) {
			return false
		}
	}
	return s != ""
}

func isWordChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
