package identity

import "errors"

// Role constants
const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleMember  = "member"
)

// Domain errors
var (
	ErrNotAuthorized = errors.New("not authorized for this action")
	ErrNotMyMember   = errors.New("member is not assigned to this trainer")
	ErrNotSelf       = errors.New("members may only act on their own records")
)

// Principal is the per-request identity context: a closed variant over
// Admin, Trainer(id) and Member(id). The zero value is unauthenticated.
type Principal struct {
	Role     string
	UserID   int // member or trainer id; 0 for admin
	UserName string
}

// Admin constructs the unrestricted admin principal.
func Admin() Principal {
	return Principal{Role: RoleAdmin, UserName: "admin"}
}

// Trainer constructs a trainer principal scoped to its own roster.
func Trainer(id int, name string) Principal {
	return Principal{Role: RoleTrainer, UserID: id, UserName: name}
}

// Member constructs a member principal scoped to its own records.
func Member(id int, name string) Principal {
	return Principal{Role: RoleMember, UserID: id, UserName: name}
}

// IsAuthenticated returns true when a role is present.
// INVARIANT: Principal fields are not mutated
func (p Principal) IsAuthenticated() bool {
	return p.Role == RoleAdmin || p.Role == RoleTrainer || p.Role == RoleMember
}

// IsAdmin returns true for the admin variant.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanManageRoster returns true for roles that run roster-level screens.
func (p Principal) CanManageRoster() bool {
	return p.Role == RoleAdmin || p.Role == RoleTrainer
}

// CanActOnMember reports whether the principal may mutate records of the
// given member. memberTrainerID is the member's assigned trainer (0 = none).
// PRE: memberID > 0
// POST: Returns nil, or an authorization error naming the violated scope
func (p Principal) CanActOnMember(memberID, memberTrainerID int) error {
	switch p.Role {
	case RoleAdmin:
		return nil
	case RoleTrainer:
		if memberTrainerID != p.UserID {
			return ErrNotMyMember
		}
		return nil
	case RoleMember:
		if memberID != p.UserID {
			return ErrNotSelf
		}
		return nil
	}
	return ErrNotAuthorized
}

// CanViewMember reports whether the principal may read the given member's
// records. Same scope rules as CanActOnMember.
func (p Principal) CanViewMember(memberID, memberTrainerID int) error {
	return p.CanActOnMember(memberID, memberTrainerID)
}

// ScopeFilter returns the WHERE-clause fragment and bound arguments that
// restrict a Member query to the principal's scope. The fragment references
// the Member table alias "m" and is empty for admin (unrestricted).
// INVARIANT: Data values are always returned as bind arguments, never
// interpolated into the fragment.
func (p Principal) ScopeFilter() (string, []any) {
	switch p.Role {
	case RoleTrainer:
		return "m.TrainerId = ?", []any{p.UserID}
	case RoleMember:
		return "m.MemberId = ?", []any{p.UserID}
	}
	return "", nil
}
