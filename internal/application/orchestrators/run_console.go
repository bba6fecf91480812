package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gymtrack/internal/adapters/storage"
	"gymtrack/internal/domain/identity"
)

// ConsoleInput carries one raw statement from the admin SQL console.
type ConsoleInput struct {
	Statement string
	// Commit persists the statement's effects. Unticked, a mutating
	// statement runs and is rolled back, which is how admins preview
	// UPDATE and DELETE row counts safely.
	Commit bool
}

// ConsoleResult carries the console output for rendering.
type ConsoleResult struct {
	Rows      []storage.Row
	Columns   []string
	Committed bool
}

// ConsoleDeps holds dependencies for the console.
type ConsoleDeps struct {
	Executor *storage.Executor
}

// ErrEmptyStatement reports a blank console submission.
var ErrEmptyStatement = errors.New("statement cannot be empty")

// ExecuteConsole runs a raw statement for the admin console. Admin only.
// The statement runs verbatim with no placeholders; the principal check is
// the only gate, matching the trust model of a DBA shell.
// PRE: principal is admin
// POST: Result rows returned; effects persist only when Commit was set
func ExecuteConsole(ctx context.Context, principal identity.Principal, input ConsoleInput, deps ConsoleDeps) (ConsoleResult, error) {
	if !principal.IsAdmin() {
		return ConsoleResult{}, identity.ErrNotAuthorized
	}
	statement := strings.TrimSpace(input.Statement)
	if statement == "" {
		return ConsoleResult{}, ErrEmptyStatement
	}

	slog.Info("admin_event", "event", "console_statement", "commit", input.Commit, "by", principal.UserName)

	rows, err := deps.Executor.Execute(ctx, statement, nil, storage.Options{Commit: input.Commit})
	if err != nil {
		return ConsoleResult{}, err
	}

	result := ConsoleResult{Rows: rows, Committed: input.Commit}
	if len(rows) > 0 {
		result.Columns = rows[0].Columns()
	}
	return result, nil
}
