package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gymtrack/internal/metrics"
)

// Options control the executor for a single statement.
type Options struct {
	// Commit commits the enclosing transaction on success. Statements run
	// without Commit are rolled back when the connection is released,
	// mirroring an autocommit-off session.
	Commit bool
	// Silent swallows failures: reads yield an empty row slice, writes nil.
	// Used for non-critical dashboard reads so one failing widget does not
	// blank the whole page.
	Silent bool
}

// Executor is the single chokepoint for all statement execution: acquire a
// dedicated connection, execute with positional bound parameters, commit or
// roll back, release the connection on every exit path.
type Executor struct {
	db *sql.DB
}

// NewExecutor creates an Executor over the given pool.
func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Execute runs one parameterized statement on a dedicated connection.
// PRE: statement uses ? placeholders for every data value
// POST: Result-set statements return ordered rows; others return nil.
// On failure the transaction is rolled back before the error propagates
// (or is swallowed in silent mode). The connection is always released.
func (e *Executor) Execute(ctx context.Context, statement string, args []any, opts Options) ([]Row, error) {
	start := time.Now()
	kind := "exec"
	if returnsRows(statement) {
		kind = "query"
	}

	rows, err := e.run(ctx, statement, args, opts.Commit)
	metrics.ObserveStatement(kind, start, err, opts.Silent)

	if err != nil {
		if opts.Silent {
			slog.Warn("statement_swallowed", "kind", kind, "error", err.Error())
			if kind == "query" {
				return []Row{}, nil
			}
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}

// Query runs a read statement and returns its rows.
func (e *Executor) Query(ctx context.Context, statement string, args ...any) ([]Row, error) {
	return e.Execute(ctx, statement, args, Options{})
}

// QuerySilent runs a read statement, degrading to an empty result on failure.
func (e *Executor) QuerySilent(ctx context.Context, statement string, args ...any) []Row {
	rows, _ := e.Execute(ctx, statement, args, Options{Silent: true})
	return rows
}

// Exec runs a mutating statement and commits it.
func (e *Executor) Exec(ctx context.Context, statement string, args ...any) error {
	_, err := e.Execute(ctx, statement, args, Options{Commit: true})
	return err
}

func (e *Executor) run(ctx context.Context, statement string, args []any, commit bool) ([]Row, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}

	var collected []Row
	if returnsRows(statement) {
		rows, err := tx.QueryContext(ctx, statement, args...)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("execute: %w", err)
		}
		collected, err = collectRows(rows)
		rows.Close()
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("fetch: %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, statement, args...); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("execute: %w", err)
		}
	}

	if commit {
		if err := tx.Commit(); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("commit: %w", err)
		}
	} else {
		tx.Rollback()
	}
	return collected, nil
}

// returnsRows classifies a statement by its leading keyword. This is the
// same decision the admin console needs, so it lives in one place.
func returnsRows(statement string) bool {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH", "SHOW", "DESCRIBE", "DESC", "EXPLAIN", "PRAGMA", "CALL":
		return true
	}
	return false
}

func collectRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out = append(out, Row{columns: cols, values: values})
	}
	return out, rows.Err()
}
