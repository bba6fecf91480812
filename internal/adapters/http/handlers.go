package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"gymtrack/internal/adapters/http/middleware"
	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/application/projections"
	"gymtrack/internal/domain/identity"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// authzError maps scope violations to 403 and everything else to 500.
func authzError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotAuthorized),
		errors.Is(err, identity.ErrNotMyMember),
		errors.Is(err, identity.ErrNotSelf):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		internalError(w, err)
	}
}

// formInt parses an integer form value; missing or bad input yields 0.
func formInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.FormValue(name))
	return n
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func principalFrom(r *http.Request) identity.Principal {
	p, _ := middleware.GetPrincipal(r.Context())
	return p
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	principal := principalFrom(r)

	funcMap := template.FuncMap{
		"currentRole": func() string { return principal.Role },
		"currentName": func() string { return principal.UserName },
		"isLoggedIn":  func() bool { return principal.IsAuthenticated() },
		"isAdmin":     func() bool { return principal.IsAdmin() },
		"isStaff":     func() bool { return principal.CanManageRoster() },
		"csrfToken":   func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleLogin renders the login form and processes credentials.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderTemplate(w, r, "login.html", map[string]any{})
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

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}, orchestrators.LoginDeps{
		AccountStore: stores.AccountStore,
		Names:        displayNames{},
	})
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{"Error": err.Error()})
		return
	}

	token, err := sessions.Create(result.Principal)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout clears the session and returns to the login form.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("gymtrack_session"); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// displayNames resolves a principal's display name from the linked record.
type displayNames struct{}

func (displayNames) DisplayName(ctx context.Context, role string, linkedID int) string {
	switch role {
	case identity.RoleTrainer:
		if t, err := stores.TrainerStore.GetByID(ctx, linkedID); err == nil {
			return t.TrainerName
		}
	case identity.RoleMember:
		if m, err := stores.MemberStore.GetByID(ctx, linkedID); err == nil {
			return m.Name
		}
	}
	return ""
}

// handleDashboard renders the role-specific landing page. Every widget
// degrades independently, so this never 500s on storage trouble.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	principal := principalFrom(r)

	result := projections.QueryGetDashboard(r.Context(), principal, projections.GetDashboardDeps{
		MemberStore:     stores.MemberStore,
		AttendanceStore: stores.AttendanceStore,
		NoticeStore:     stores.NoticeStore,
		WorkoutStore:    stores.WorkoutStore,
		StatusDeps: projections.GetMembershipStatusDeps{
			MemberStore:     stores.MemberStore,
			MembershipStore: stores.PackageStore,
		},
	}, timeNow())

	renderTemplate(w, r, "dashboard.html", result)
}
