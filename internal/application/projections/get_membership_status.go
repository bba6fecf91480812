package projections

import (
	"context"
	"time"

	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
	"gymtrack/internal/domain/membership"
)

// StatusMemberStore resolves the member for scope checks and display.
type StatusMemberStore interface {
	GetByID(ctx context.Context, id int) (member.Member, error)
}

// StatusMembershipStore answers end-date lookups.
type StatusMembershipStore interface {
	EndDate(ctx context.Context, memberID int) (string, error)
}

// GetMembershipStatusDeps holds dependencies for the status projection.
type GetMembershipStatusDeps struct {
	MemberStore     StatusMemberStore
	MembershipStore StatusMembershipStore
}

// MembershipStatusResult carries one member's derived membership state.
type MembershipStatusResult struct {
	MemberID   int
	MemberName string
	EndDate    string // YYYY-MM-DD, empty when never paid
	Status     string // Active, Expired, No Membership, Unknown
}

// QueryGetMembershipStatus derives a member's membership state from their
// latest payment and the paid package's duration.
// PRE: principal may view the member
// POST: Status is Active while today <= end date, else Expired
func QueryGetMembershipStatus(ctx context.Context, principal identity.Principal, memberID int, deps GetMembershipStatusDeps, now time.Time) (MembershipStatusResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, memberID)
	if err != nil {
		return MembershipStatusResult{}, err
	}
	if err := principal.CanViewMember(m.MemberID, m.TrainerID); err != nil {
		return MembershipStatusResult{}, err
	}

	endDate, err := deps.MembershipStore.EndDate(ctx, memberID)
	if err != nil {
		return MembershipStatusResult{}, err
	}

	return MembershipStatusResult{
		MemberID:   m.MemberID,
		MemberName: m.Name,
		EndDate:    endDate,
		Status:     membership.StatusFor(endDate, now),
	}, nil
}
