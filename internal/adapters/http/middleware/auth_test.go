package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymtrack/internal/domain/identity"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create(identity.Trainer(7, "Sam"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	session, ok := ss.Get(token)
	if !ok {
		t.Fatal("expected session to exist")
	}
	if session.Principal.Role != identity.RoleTrainer || session.Principal.UserID != 7 {
		t.Errorf("got principal %+v", session.Principal)
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("expected session to be gone after Delete")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create(identity.Admin())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ss.mu.Lock()
	s := ss.sessions[token]
	s.CreatedAt = time.Now().Add(-25 * time.Hour)
	ss.sessions[token] = s
	ss.mu.Unlock()

	if _, ok := ss.Get(token); ok {
		t.Error("expected expired session to be rejected")
	}
}

func TestAuthSetsPrincipalFromCookie(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create(identity.Member(3, "Ana"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got identity.Principal
	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetPrincipal(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "gymtrack_session", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected principal in context")
	}
	if got.Role != identity.RoleMember || got.UserID != 3 {
		t.Errorf("got principal %+v", got)
	}
}

func TestAuthIgnoresUnknownToken(t *testing.T) {
	ss := NewSessionStore()

	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = GetPrincipal(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "gymtrack_session", Value: "bogus"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("expected no principal for an unknown token")
	}
}

func TestRequireAuthRedirectsToLogin(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run unauthenticated")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/members", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("got redirect to %q, want /login", loc)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  identity.Principal
		roles      []string
		wantStatus int
	}{
		{"admin allowed on admin route", identity.Admin(), []string{identity.RoleAdmin}, http.StatusOK},
		{"trainer allowed on staff route", identity.Trainer(7, "Sam"), []string{identity.RoleAdmin, identity.RoleTrainer}, http.StatusOK},
		{"member forbidden on staff route", identity.Member(3, "Ana"), []string{identity.RoleAdmin, identity.RoleTrainer}, http.StatusForbidden},
		{"trainer forbidden on admin route", identity.Trainer(7, "Sam"), []string{identity.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(ContextWithPrincipal(req.Context(), tt.principal))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleUnauthenticatedRedirects(t *testing.T) {
	handler := RequireRole(identity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run unauthenticated")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusSeeOther)
	}
}
