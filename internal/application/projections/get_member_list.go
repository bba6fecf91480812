package projections

import (
	"context"

	membershipStore "gymtrack/internal/adapters/storage/membership"
	trainerStore "gymtrack/internal/adapters/storage/trainer"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/member"
)

// ListMemberStore defines the member reads used by the roster list.
type ListMemberStore interface {
	List(ctx context.Context, scope identity.Principal) ([]member.Member, error)
}

// ListTrainerStore resolves trainer names for the roster columns.
type ListTrainerStore interface {
	OptionsSilent(ctx context.Context) []trainerStore.Option
}

// ListPackageStore resolves package names for the roster columns.
type ListPackageStore interface {
	OptionsSilent(ctx context.Context) []membershipStore.Option
}

// GetMemberListDeps holds dependencies for the roster projection.
type GetMemberListDeps struct {
	MemberStore  ListMemberStore
	TrainerStore ListTrainerStore
	PackageStore ListPackageStore
}

// MemberListItem is one roster row with names resolved for display.
type MemberListItem struct {
	member.Member
	TrainerName string
	PackageName string
}

// QueryGetMemberList lists members visible to the principal: all for
// admin, own roster for a trainer, self for a member.
// POST: Rows never leak outside the principal's scope
func QueryGetMemberList(ctx context.Context, principal identity.Principal, deps GetMemberListDeps) ([]MemberListItem, error) {
	members, err := deps.MemberStore.List(ctx, principal)
	if err != nil {
		return nil, err
	}

	// Name lookups are display-only and degrade to blank columns.
	trainerNames := map[int]string{}
	for _, o := range deps.TrainerStore.OptionsSilent(ctx) {
		trainerNames[o.ID] = o.Name
	}
	packageNames := map[int]string{}
	for _, o := range deps.PackageStore.OptionsSilent(ctx) {
		packageNames[o.ID] = o.Name
	}

	items := make([]MemberListItem, 0, len(members))
	for _, m := range members {
		items = append(items, MemberListItem{
			Member:      m,
			TrainerName: trainerNames[m.TrainerID],
			PackageName: packageNames[m.PackageID],
		})
	}
	return items, nil
}
