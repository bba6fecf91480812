package web

import (
	"net/http"

	"gymtrack/internal/adapters/http/middleware"
	"gymtrack/internal/domain/identity"
)

// registerRoutes wires every page and action onto the mux. Route-level
// middleware gates by role; record-level scope checks live in the
// orchestrators and projections.
func registerRoutes(mux *http.ServeMux) {
	requireAuth := middleware.RequireAuth
	staffOnly := middleware.RequireRole(identity.RoleAdmin, identity.RoleTrainer)
	adminOnly := middleware.RequireRole(identity.RoleAdmin)
	memberOrAdmin := middleware.RequireRole(identity.RoleAdmin, identity.RoleMember)

	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	mux.Handle("/", requireAuth(http.HandlerFunc(handleDashboard)))

	mux.Handle("/members", requireAuth(http.HandlerFunc(handleMembers)))
	mux.Handle("/members/edit", staffOnly(http.HandlerFunc(handleMemberEdit)))
	mux.Handle("/members/delete", staffOnly(http.HandlerFunc(handleMemberDelete)))
	mux.Handle("/members/profile", requireAuth(http.HandlerFunc(handleMemberProfile)))

	mux.Handle("/trainers", adminOnly(http.HandlerFunc(handleTrainers)))
	mux.Handle("/trainers/delete", adminOnly(http.HandlerFunc(handleTrainerDelete)))

	mux.Handle("/packages", requireAuth(http.HandlerFunc(handlePackages)))
	mux.Handle("/packages/delete", adminOnly(http.HandlerFunc(handlePackageDelete)))

	mux.Handle("/plans", requireAuth(http.HandlerFunc(handlePlans)))
	mux.Handle("/plans/delete", staffOnly(http.HandlerFunc(handlePlanDelete)))

	mux.Handle("/actions/enroll", staffOnly(http.HandlerFunc(handleEnroll)))
	mux.Handle("/actions/complete", requireAuth(http.HandlerFunc(handleCompletePlan)))
	mux.Handle("/actions/payment", memberOrAdmin(http.HandlerFunc(handlePayment)))
	mux.Handle("/actions/checkin", requireAuth(http.HandlerFunc(handleCheckIn)))
	mux.Handle("/actions/checkout", requireAuth(http.HandlerFunc(handleCheckOut)))

	mux.Handle("/attendance", staffOnly(http.HandlerFunc(handleAttendanceSheet)))
	mux.Handle("/status", requireAuth(http.HandlerFunc(handleStatusSheet)))
	mux.Handle("/payments", staffOnly(http.HandlerFunc(handlePaymentHistory)))

	mux.Handle("/equipment", requireAuth(http.HandlerFunc(handleEquipment)))
	mux.Handle("/exercises", requireAuth(http.HandlerFunc(handleExercises)))

	mux.Handle("/reports", adminOnly(http.HandlerFunc(handleReports)))
	mux.Handle("/notices", adminOnly(http.HandlerFunc(handleNotices)))
	mux.Handle("/admin/console", adminOnly(http.HandlerFunc(handleConsole)))
	mux.Handle("/admin/db-users", adminOnly(http.HandlerFunc(handleDBUsers)))
	mux.Handle("/admin/accounts", adminOnly(http.HandlerFunc(handleAccounts)))
}
