package web

import (
	"net/http"

	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/application/projections"
	"gymtrack/internal/domain/identity"
)

func attendanceDeps() orchestrators.RecordAttendanceDeps {
	return orchestrators.RecordAttendanceDeps{
		AttendanceStore: stores.AttendanceStore,
		MemberStore:     stores.MemberStore,
	}
}

func attendanceMemberID(r *http.Request, principal identity.Principal) int {
	if principal.Role == identity.RoleMember {
		return principal.UserID
	}
	return formInt(r, "member_id")
}

// handleCheckIn handles POST /actions/checkin.
func handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	principal := principalFrom(r)
	err := orchestrators.ExecuteCheckIn(r.Context(), principal, orchestrators.RecordAttendanceInput{
		MemberID: attendanceMemberID(r, principal),
		Now:      timeNow(),
	}, attendanceDeps())
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, redirectAfterAttendance(principal), http.StatusSeeOther)
}

// handleCheckOut handles POST /actions/checkout.
func handleCheckOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	principal := principalFrom(r)
	err := orchestrators.ExecuteCheckOut(r.Context(), principal, orchestrators.RecordAttendanceInput{
		MemberID: attendanceMemberID(r, principal),
		Now:      timeNow(),
	}, attendanceDeps())
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, redirectAfterAttendance(principal), http.StatusSeeOther)
}

func redirectAfterAttendance(principal identity.Principal) string {
	if principal.CanManageRoster() {
		return "/attendance"
	}
	return "/"
}

// handleAttendanceSheet renders one day's visits for staff. Defaults to
// today; trainers only ever see their own roster.
func handleAttendanceSheet(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	date := r.FormValue("date")
	if date == "" {
		date = timeNow().Format("2006-01-02")
	}

	lines, err := projections.QueryGetAttendanceSheet(r.Context(), principal, date,
		projections.GetAttendanceSheetDeps{AttendanceStore: stores.AttendanceStore})
	if err != nil {
		authzError(w, err)
		return
	}
	renderTemplate(w, r, "attendance.html", map[string]any{
		"Date":          date,
		"Lines":         lines,
		"MemberOptions": stores.MemberStore.OptionsSilent(r.Context(), principal),
	})
}

// handleStatusSheet renders the membership status of every visible member.
// A member only ever sees their own line.
func handleStatusSheet(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	if principal.Role == identity.RoleMember {
		res, err := projections.QueryGetMembershipStatus(r.Context(), principal, principal.UserID,
			reportsDeps().StatusDeps, timeNow())
		if err != nil {
			authzError(w, err)
			return
		}
		lines := []projections.MemberStatusLine{{
			MemberID:   res.MemberID,
			MemberName: res.MemberName,
			EndDate:    res.EndDate,
			Status:     res.Status,
		}}
		renderTemplate(w, r, "status.html", map[string]any{"Lines": lines})
		return
	}

	lines, err := projections.QueryGetStatusSheet(r.Context(), principal, reportsDeps(), timeNow())
	if err != nil {
		authzError(w, err)
		return
	}
	renderTemplate(w, r, "status.html", map[string]any{"Lines": lines})
}
