package provision

import (
	"errors"
	"testing"
)

// TestRequestValidate exercises the identifier allow-lists.
func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"valid app user", Request{Username: "gym_app", Secret: "s3cret", RoleTag: RoleTagAppUser}, nil},
		{"valid with host", Request{Username: "ops1", Secret: "x", RoleTag: RoleTagAdmin, Host: "10.0.0.%"}, nil},
		{"valid trainer user", Request{Username: "coach_ro", Secret: "x", RoleTag: RoleTagTrainerUser}, nil},
		{"empty name", Request{Secret: "x", RoleTag: RoleTagAdmin}, ErrBadIdentifier},
		{"quote in name", Request{Username: "x`; DROP TABLE Member; --", Secret: "x", RoleTag: RoleTagAdmin}, ErrBadIdentifier},
		{"space in name", Request{Username: "bad name", Secret: "x", RoleTag: RoleTagAdmin}, ErrBadIdentifier},
		{"backtick in host", Request{Username: "ok", Secret: "x", RoleTag: RoleTagAdmin, Host: "evil`host"}, ErrBadHost},
		{"empty secret", Request{Username: "ok", RoleTag: RoleTagAdmin}, ErrEmptySecret},
		{"unknown role tag", Request{Username: "ok", Secret: "x", RoleTag: "root"}, ErrBadRoleTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate()=%v want %v", err, tt.wantErr)
			}
		})
	}
}

// TestPrivilegesFor verifies the fixed privilege set per role tag.
func TestPrivilegesFor(t *testing.T) {
	if got := privilegesFor(RoleTagAdmin); got != "ALL PRIVILEGES" {
		t.Errorf("admin=%q", got)
	}
	if got := privilegesFor(RoleTagAppUser); got != "SELECT, INSERT, UPDATE, DELETE, EXECUTE" {
		t.Errorf("app_user=%q", got)
	}
	if got := privilegesFor(RoleTagTrainerUser); got != "SELECT, EXECUTE" {
		t.Errorf("trainer_user=%q", got)
	}
}
