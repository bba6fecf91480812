package web

import (
	"net/http"

	"gymtrack/internal/adapters/storage/provision"
	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/application/projections"
)

func reportsDeps() projections.GetReportsDeps {
	return projections.GetReportsDeps{
		Executor:    executor,
		MemberStore: stores.MemberStore,
		StatusDeps: projections.GetMembershipStatusDeps{
			MemberStore:     stores.MemberStore,
			MembershipStore: stores.PackageStore,
		},
	}
}

// handleReports renders the admin report aggregates.
func handleReports(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetReports(r.Context(), principalFrom(r), reportsDeps())
	if err != nil {
		authzError(w, err)
		return
	}
	renderTemplate(w, r, "reports.html", result)
}

// handleConsole handles GET (form) and POST (run) for the raw SQL console.
// The route is admin-gated; effects persist only when the commit box is
// ticked.
func handleConsole(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "console.html", map[string]any{})
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

	statement := r.FormValue("statement")
	result, err := orchestrators.ExecuteConsole(r.Context(), principalFrom(r), orchestrators.ConsoleInput{
		Statement: statement,
		Commit:    r.FormValue("commit") == "on",
	}, orchestrators.ConsoleDeps{Executor: executor})

	data := map[string]any{"Statement": statement}
	if err != nil {
		data["Error"] = err.Error()
	} else {
		data["Columns"] = result.Columns
		data["Rows"] = result.Rows
		data["Committed"] = result.Committed
		data["Ran"] = true
	}
	renderTemplate(w, r, "console.html", data)
}

// handleDBUsers handles GET (form) and POST (provision) for database-level
// principals. Only meaningful against the MySQL engine.
func handleDBUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "db_users.html", map[string]any{})
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

	req := provision.Request{
		Username: r.FormValue("db_username"),
		Secret:   r.FormValue("db_secret"),
		RoleTag:  r.FormValue("role_tag"),
		Host:     r.FormValue("host"),
	}
	err := orchestrators.ExecuteProvisionDBUser(r.Context(), principalFrom(r), req,
		orchestrators.ProvisionDBUserDeps{Provisioner: provisioner})

	data := map[string]any{}
	if err != nil {
		data["Error"] = err.Error()
	} else {
		data["Created"] = req.Username
	}
	renderTemplate(w, r, "db_users.html", data)
}

// handleAccounts handles GET (form) and POST (create) for login accounts.
func handleAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		renderTemplate(w, r, "accounts.html", map[string]any{
			"MemberOptions":  stores.MemberStore.OptionsSilent(ctx, principal),
			"TrainerOptions": stores.TrainerStore.OptionsSilent(ctx),
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

	err := orchestrators.ExecuteCreateAccount(ctx, principal, orchestrators.CreateAccountInput{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
		LinkedID: formInt(r, "linked_id"),
	}, orchestrators.CreateAccountDeps{AccountStore: stores.AccountStore})
	if err != nil {
		renderTemplate(w, r, "accounts.html", map[string]any{
			"Error":          err.Error(),
			"MemberOptions":  stores.MemberStore.OptionsSilent(ctx, principal),
			"TrainerOptions": stores.TrainerStore.OptionsSilent(ctx),
		})
		return
	}
	http.Redirect(w, r, "/admin/accounts", http.StatusSeeOther)
}

// handleNotices handles GET (list), and POST create/publish/delete keyed
// by the "action" field.
func handleNotices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(r)

	if r.Method == http.MethodGet {
		notices, err := stores.NoticeStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "notices.html", map[string]any{"Notices": notices})
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

	deps := orchestrators.ManageNoticeDeps{NoticeStore: stores.NoticeStore}
	var err error
	switch r.FormValue("action") {
	case "publish":
		err = orchestrators.ExecuteSetNoticePublished(ctx, principal, r.FormValue("notice_id"), true, deps)
	case "unpublish":
		err = orchestrators.ExecuteSetNoticePublished(ctx, principal, r.FormValue("notice_id"), false, deps)
	case "delete":
		err = orchestrators.ExecuteDeleteNotice(ctx, principal, r.FormValue("notice_id"), deps)
	default:
		_, err = orchestrators.ExecutePostNotice(ctx, principal, orchestrators.PostNoticeInput{
			Title:   r.FormValue("title"),
			Content: r.FormValue("content"),
			Publish: r.FormValue("publish") == "on",
		}, deps)
	}
	if err != nil {
		authzError(w, err)
		return
	}
	http.Redirect(w, r, "/notices", http.StatusSeeOther)
}
