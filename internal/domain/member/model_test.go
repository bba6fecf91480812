package member_test

import (
	"testing"

	"gymtrack/internal/domain/member"
)

// TestMemberValidation tests validation of Member.
func TestMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		member  member.Member
		wantErr bool
	}{
		{
			name: "valid member",
			member: member.Member{
				Name:      "John Doe",
				Email:     "john@example.com",
				Gender:    member.GenderMale,
				PackageID: 1,
				TrainerID: 2,
			},
			wantErr: false,
		},
		{
			name:    "valid member with only a name",
			member:  member.Member{Name: "Jane"},
			wantErr: false,
		},
		{
			name:    "empty name",
			member:  member.Member{Email: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			member:  member.Member{Name: "   "},
			wantErr: true,
		},
		{
			name:    "invalid email",
			member:  member.Member{Name: "John", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "invalid gender",
			member:  member.Member{Name: "John", Gender: "X"},
			wantErr: true,
		},
		{
			name:    "negative trainer id",
			member:  member.Member{Name: "John", TrainerID: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

// TestMemberAssociations verifies the optional-association helpers.
func TestMemberAssociations(t *testing.T) {
	m := member.Member{Name: "John"}
	if m.HasTrainer() || m.HasPackage() {
		t.Fatal("zero ids must mean no association")
	}
	m.TrainerID = 4
	m.PackageID = 2
	if !m.HasTrainer() || !m.HasPackage() {
		t.Fatal("non-zero ids must mean association")
	}
}
