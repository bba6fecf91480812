package member_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"gymtrack/internal/adapters/storage"
	memberStore "gymtrack/internal/adapters/storage/member"
	"gymtrack/internal/domain/identity"
	domain "gymtrack/internal/domain/member"
)

func newTestStore(t *testing.T) (*memberStore.SQLStore, *storage.Executor) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	exec := storage.NewExecutor(db)
	return memberStore.NewSQLStore(exec), exec
}

// TestCreateThenListRoundTrip verifies a created member reads back with the
// submitted values and NULLs preserved for omitted optional fields.
func TestCreateThenListRoundTrip(t *testing.T) {
	store, exec := newTestStore(t)
	ctx := context.Background()

	m := domain.Member{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		JoinDate: "2026-01-10",
		Gender:   domain.GenderFemale,
		// PhoneNo, Address, DoB, PackageID, TrainerID omitted
	}
	if err := store.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	members, err := store.List(ctx, identity.Admin())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("members=%d want 1", len(members))
	}
	got := members[0]
	if got.Name != m.Name || got.Email != m.Email || got.JoinDate != m.JoinDate || got.Gender != m.Gender {
		t.Fatalf("got=%+v want submitted values", got)
	}
	if got.PhoneNo != "" || got.Address != "" || got.DoB != "" || got.PackageID != 0 || got.TrainerID != 0 {
		t.Fatalf("omitted fields must stay empty, got=%+v", got)
	}

	// Omitted optionals must be SQL NULL, not empty strings.
	rows, err := exec.Query(ctx, "SELECT PhoneNo, PackageId, TrainerId FROM Member WHERE MemberId = ?", got.MemberID)
	if err != nil {
		t.Fatalf("raw query: %v", err)
	}
	if !rows[0].IsNull("PhoneNo") || !rows[0].IsNull("PackageId") || !rows[0].IsNull("TrainerId") {
		t.Fatalf("omitted fields must persist as NULL: %v", rows[0])
	}
}

// TestListScoping verifies the trainer and member scope filters.
func TestListScoping(t *testing.T) {
	store, exec := newTestStore(t)
	ctx := context.Background()

	mustExec(t, exec, "INSERT INTO Trainer (TrainerName) VALUES (?)", "Kim")
	mustExec(t, exec, "INSERT INTO Trainer (TrainerName) VALUES (?)", "Lee")
	mustExec(t, exec, "INSERT INTO Member (Name, TrainerId) VALUES (?, ?)", "A", 1)
	mustExec(t, exec, "INSERT INTO Member (Name, TrainerId) VALUES (?, ?)", "B", 2)
	mustExec(t, exec, "INSERT INTO Member (Name) VALUES (?)", "C")

	all, err := store.List(ctx, identity.Admin())
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin sees %d want 3", len(all))
	}

	roster, err := store.List(ctx, identity.Trainer(1, "Kim"))
	if err != nil {
		t.Fatalf("list trainer: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "A" {
		t.Fatalf("trainer roster=%+v want only A", roster)
	}

	self, err := store.List(ctx, identity.Member(3, "C"))
	if err != nil {
		t.Fatalf("list member: %v", err)
	}
	if len(self) != 1 || self[0].Name != "C" {
		t.Fatalf("member self view=%+v want only C", self)
	}
}

// TestUpdateAndDelete verifies the remaining CRUD operations.
func TestUpdateAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, domain.Member{Name: "Jane"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := store.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	got.Email = "jane@example.com"
	got.PhoneNo = "555-0101"
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := store.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Email != "jane@example.com" || updated.PhoneNo != "555-0101" {
		t.Fatalf("updated=%+v", updated)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, 1); !errors.Is(err, memberStore.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

// TestOptionsSilentDegrades verifies dropdown loads never fail.
func TestOptionsSilentDegrades(t *testing.T) {
	store, exec := newTestStore(t)
	ctx := context.Background()

	mustExec(t, exec, "INSERT INTO Member (Name) VALUES (?)", "Zed")
	mustExec(t, exec, "INSERT INTO Member (Name) VALUES (?)", "Amy")

	opts := store.OptionsSilent(ctx, identity.Admin())
	if len(opts) != 2 || opts[0].Name != "Amy" {
		t.Fatalf("opts=%+v want name order", opts)
	}

	// Break the table; the silent path must degrade to empty, not panic.
	mustExec(t, exec, "DROP TABLE Member")
	if opts := store.OptionsSilent(ctx, identity.Admin()); len(opts) != 0 {
		t.Fatalf("opts=%+v want empty after failure", opts)
	}
}

func mustExec(t *testing.T, exec *storage.Executor, statement string, args ...any) {
	t.Helper()
	if err := exec.Exec(context.Background(), statement, args...); err != nil {
		t.Fatalf("exec %q: %v", statement, err)
	}
}
