package orchestrators

import (
	"context"
	"log/slog"

	"gymtrack/internal/adapters/storage/provision"
	"gymtrack/internal/domain/identity"
)

// DBUserProvisioner applies a provisioning request against the engine.
type DBUserProvisioner interface {
	Apply(ctx context.Context, req provision.Request) error
}

// ProvisionDBUserDeps holds dependencies for ProvisionDBUser.
type ProvisionDBUserDeps struct {
	Provisioner DBUserProvisioner
}

// ExecuteProvisionDBUser creates a database-level principal with the fixed
// privilege set of its role tag. Admin only.
// PRE: principal is admin; req passes the identifier allow-lists
// POST: Database user exists with exactly the role tag's privileges
func ExecuteProvisionDBUser(ctx context.Context, principal identity.Principal, req provision.Request, deps ProvisionDBUserDeps) error {
	if !principal.IsAdmin() {
		return identity.ErrNotAuthorized
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := deps.Provisioner.Apply(ctx, req); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "db_user_provisioned", "db_user", req.Username, "role_tag", req.RoleTag)
	return nil
}
