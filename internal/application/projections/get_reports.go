package projections

import (
	"context"
	"time"

	"gymtrack/internal/adapters/storage"
	"gymtrack/internal/domain/identity"
	"gymtrack/internal/domain/membership"
	"gymtrack/internal/domain/workout"
)

// GetReportsDeps holds dependencies for the reports projection. Reports
// are ad hoc aggregates, so they run through the executor directly rather
// than growing every store.
type GetReportsDeps struct {
	Executor    *storage.Executor
	MemberStore ListMemberStore
	StatusDeps  GetMembershipStatusDeps
}

// PackageUptake is one row of the members-per-package report.
type PackageUptake struct {
	PackageName string
	Members     int
}

// TrainerLoad is one row of the members-per-trainer report.
type TrainerLoad struct {
	TrainerName string
	Members     int
}

// RevenueMonth is one row of the revenue-by-month report.
type RevenueMonth struct {
	Month   string // YYYY-MM
	Revenue float64
}

// MemberStatusLine is one row of the membership status sheet.
type MemberStatusLine struct {
	MemberID   int
	MemberName string
	EndDate    string
	Status     string
}

// MemberCompleted is one row of the completed-plans-per-member report.
type MemberCompleted struct {
	MemberName string
	Completed  int
}

// ReportsResult carries every admin report section.
type ReportsResult struct {
	PackageUptake    []PackageUptake
	TrainerLoad      []TrainerLoad
	Revenue          []RevenueMonth
	NeverAttended    []string // member names with no attendance at all
	CompletedMembers []string // members with at least one completed plan
	CompletedCounts  []MemberCompleted
}

// QueryGetReports runs the admin report aggregates. Admin only.
// POST: Sections are independent; a failing aggregate fails the page
func QueryGetReports(ctx context.Context, principal identity.Principal, deps GetReportsDeps) (ReportsResult, error) {
	if !principal.IsAdmin() {
		return ReportsResult{}, identity.ErrNotAuthorized
	}

	var result ReportsResult

	rows, err := deps.Executor.Query(ctx,
		`SELECT k.PackageName, COUNT(m.MemberId) AS Members
		 FROM Package k
		 LEFT JOIN Member m ON m.PackageId = k.PackageId
		 GROUP BY k.PackageId, k.PackageName
		 ORDER BY Members DESC`)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.PackageUptake = append(result.PackageUptake, PackageUptake{
			PackageName: r.String("PackageName"),
			Members:     r.Int("Members"),
		})
	}

	rows, err = deps.Executor.Query(ctx,
		`SELECT t.TrainerName, COUNT(m.MemberId) AS Members
		 FROM Trainer t
		 LEFT JOIN Member m ON m.TrainerId = t.TrainerId
		 GROUP BY t.TrainerId, t.TrainerName
		 ORDER BY Members DESC`)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.TrainerLoad = append(result.TrainerLoad, TrainerLoad{
			TrainerName: r.String("TrainerName"),
			Members:     r.Int("Members"),
		})
	}

	rows, err = deps.Executor.Query(ctx,
		`SELECT SUBSTR(TimeStamp, 1, 7) AS Month, SUM(Amount) AS Revenue
		 FROM Payment
		 GROUP BY Month
		 ORDER BY Month DESC
		 LIMIT 12`)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.Revenue = append(result.Revenue, RevenueMonth{
			Month:   r.String("Month"),
			Revenue: r.Float("Revenue"),
		})
	}

	rows, err = deps.Executor.Query(ctx,
		`SELECT m.Name
		 FROM Member m
		 WHERE NOT EXISTS (SELECT 1 FROM Attendance a WHERE a.MemberId = m.MemberId)
		 ORDER BY m.Name`)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.NeverAttended = append(result.NeverAttended, r.String("Name"))
	}

	rows, err = deps.Executor.Query(ctx,
		`SELECT Name
		 FROM Member
		 WHERE MemberId IN (SELECT MemberId FROM WorkOutTracker WHERE Status = ?)
		 ORDER BY Name`, workout.StatusCompleted)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.CompletedMembers = append(result.CompletedMembers, r.String("Name"))
	}

	rows, err = deps.Executor.Query(ctx,
		`SELECT m.Name, COUNT(*) AS Completed
		 FROM Member m
		 JOIN WorkOutTracker t ON t.MemberId = m.MemberId
		 WHERE t.Status = ?
		 GROUP BY m.MemberId, m.Name
		 ORDER BY Completed DESC, m.Name`, workout.StatusCompleted)
	if err != nil {
		return ReportsResult{}, err
	}
	for _, r := range rows {
		result.CompletedCounts = append(result.CompletedCounts, MemberCompleted{
			MemberName: r.String("Name"),
			Completed:  r.Int("Completed"),
		})
	}

	return result, nil
}

// QueryGetStatusSheet derives the membership status of every visible
// member, for the status screen.
// PRE: principal can manage the roster
func QueryGetStatusSheet(ctx context.Context, principal identity.Principal, deps GetReportsDeps, now time.Time) ([]MemberStatusLine, error) {
	if !principal.CanManageRoster() {
		return nil, identity.ErrNotAuthorized
	}

	members, err := deps.MemberStore.List(ctx, principal)
	if err != nil {
		return nil, err
	}

	lines := make([]MemberStatusLine, 0, len(members))
	for _, m := range members {
		endDate, err := deps.StatusDeps.MembershipStore.EndDate(ctx, m.MemberID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, MemberStatusLine{
			MemberID:   m.MemberID,
			MemberName: m.Name,
			EndDate:    endDate,
			Status:     membership.StatusFor(endDate, now),
		})
	}
	return lines, nil
}
