package web

import (
	"net/http"

	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/domain/identity"
)

// handlePayment handles GET (form) and POST (record) for /actions/payment.
func handlePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		renderTemplate(w, r, "payment.html", map[string]any{
			"MemberOptions":  stores.MemberStore.OptionsSilent(ctx, principal),
			"PackageOptions": stores.PackageStore.OptionsSilent(ctx),
			"RecentAudit":    stores.PaymentStore.RecentAuditSilent(ctx, 10),
		})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	memberID := formInt(r, "member_id")
	if principal.Role == identity.RoleMember {
		memberID = principal.UserID
	}
	amount, _ := parseFloat(r.FormValue("amount"))

	err := orchestrators.ExecuteRecordPayment(ctx, principal, orchestrators.RecordPaymentInput{
		MemberID:  memberID,
		PackageID: formInt(r, "package_id"),
		Amount:    amount,
		Mode:      r.FormValue("mode"),
	}, orchestrators.RecordPaymentDeps{
		PaymentStore: stores.PaymentStore,
		PackageStore: stores.PackageStore,
		MemberStore:  stores.MemberStore,
	})
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/actions/payment", http.StatusSeeOther)
}

// handlePaymentHistory renders recent payments joined with member and
// package names, for staff.
func handlePaymentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := stores.PaymentStore.History(r.Context(), 50)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "payments.html", map[string]any{"History": history})
}
