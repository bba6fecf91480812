package identity_test

import (
	"errors"
	"testing"

	"gymtrack/internal/domain/identity"
)

// TestCanActOnMember exercises every role/scope combination.
func TestCanActOnMember(t *testing.T) {
	tests := []struct {
		name      string
		principal identity.Principal
		memberID  int
		trainerID int
		wantErr   error
	}{
		{"admin acts on anyone", identity.Admin(), 7, 3, nil},
		{"trainer acts on own member", identity.Trainer(3, "T"), 7, 3, nil},
		{"trainer acts on foreign member", identity.Trainer(3, "T"), 7, 4, identity.ErrNotMyMember},
		{"trainer acts on unassigned member", identity.Trainer(3, "T"), 7, 0, identity.ErrNotMyMember},
		{"member acts on self", identity.Member(7, "M"), 7, 3, nil},
		{"member acts on other member", identity.Member(7, "M"), 8, 3, identity.ErrNotSelf},
		{"unauthenticated", identity.Principal{}, 7, 3, identity.ErrNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.principal.CanActOnMember(tt.memberID, tt.trainerID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want %v", err, tt.wantErr)
			}
		})
	}
}

// TestScopeFilter verifies the per-variant SQL scope fragment.
func TestScopeFilter(t *testing.T) {
	clause, args := identity.Admin().ScopeFilter()
	if clause != "" || args != nil {
		t.Fatalf("admin scope=%q args=%v want unrestricted", clause, args)
	}

	clause, args = identity.Trainer(3, "T").ScopeFilter()
	if clause != "m.TrainerId = ?" || len(args) != 1 || args[0] != 3 {
		t.Fatalf("trainer scope=%q args=%v", clause, args)
	}

	clause, args = identity.Member(7, "M").ScopeFilter()
	if clause != "m.MemberId = ?" || len(args) != 1 || args[0] != 7 {
		t.Fatalf("member scope=%q args=%v", clause, args)
	}
}

// TestIsAuthenticated verifies the zero value is unauthenticated.
func TestIsAuthenticated(t *testing.T) {
	if (identity.Principal{}).IsAuthenticated() {
		t.Fatal("zero principal must not be authenticated")
	}
	if !identity.Member(1, "M").IsAuthenticated() {
		t.Fatal("member principal must be authenticated")
	}
	if !identity.Admin().IsAdmin() {
		t.Fatal("admin principal must be admin")
	}
}
