package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/domain/route"
)

// fakeSessionSource serves a fixed session and records Restore calls.
type fakeSessionSource struct {
	sess     auth.Session
	restored int
}

func (f *fakeSessionSource) Restore(context.Context) bool {
	f.restored++
	return f.sess.IsAuthenticated()
}

func (f *fakeSessionSource) Current() auth.Session { return f.sess }

func guestSession() auth.Session { return auth.Session{} }

func userSession(roles ...string) auth.Session {
	return auth.Session{Token: "tok", Identity: &auth.Identity{Username: "amy", Roles: roles}}
}

func TestDecide(t *testing.T) {
	superOnly := route.Intent{Name: "admin", Path: "/admin", RequiresAuth: true, SuperUserOnly: true}

	tests := []struct {
		name   string
		intent route.Intent
		sess   auth.Session
		want   Decision
	}{
		{
			name:   "open destination admits guest",
			intent: route.Intent{Name: "about", Path: "/about"},
			sess:   guestSession(),
			want:   Admit,
		},
		{
			name:   "requires auth rejects guest to login",
			intent: route.Intent{Name: "home", Path: "/", RequiresAuth: true},
			sess:   guestSession(),
			want:   RedirectLogin,
		},
		{
			name:   "requires auth admits authenticated",
			intent: route.Intent{Name: "home", Path: "/", RequiresAuth: true},
			sess:   userSession(),
			want:   Admit,
		},
		{
			name:   "superuser only sends guest to login not home",
			intent: superOnly,
			sess:   guestSession(),
			want:   RedirectLogin,
		},
		{
			name:   "superuser only sends authenticated non-superuser home",
			intent: superOnly,
			sess:   userSession(auth.RoleURLManager),
			want:   RedirectHome,
		},
		{
			name:   "superuser only admits superuser",
			intent: superOnly,
			sess:   userSession(auth.RoleSuperUser),
			want:   Admit,
		},
		{
			name: "permission check sends unqualified user home",
			intent: route.Intent{Name: "users", Path: "/users", RequiresAuth: true,
				RequiredPermissions: []auth.Permission{auth.PermViewUsers, auth.PermManageUsers}},
			sess: userSession(auth.RoleURLViewer),
			want: RedirectHome,
		},
		{
			name: "permission check admits any matching permission",
			intent: route.Intent{Name: "users", Path: "/users", RequiresAuth: true,
				RequiredPermissions: []auth.Permission{auth.PermViewUsers, auth.PermManageUsers}},
			sess: userSession(auth.RoleUserViewer),
			want: Admit,
		},
		{
			name: "permission check exempts superuser",
			intent: route.Intent{Name: "users", Path: "/users", RequiresAuth: true,
				RequiredPermissions: []auth.Permission{auth.PermManageUsers}},
			sess: userSession(auth.RoleSuperUser),
			want: Admit,
		},
		{
			name: "permission check precedes guest-only and skips guests",
			intent: route.Intent{Name: "odd", Path: "/odd",
				RequiredPermissions: []auth.Permission{auth.PermManageUsers}},
			sess: guestSession(),
			want: Admit,
		},
		{
			name:   "guest only admits guest",
			intent: route.Intent{Name: "login", Path: "/login", GuestOnly: true},
			sess:   guestSession(),
			want:   Admit,
		},
		{
			name:   "guest only sends authenticated home",
			intent: route.Intent{Name: "login", Path: "/login", GuestOnly: true},
			sess:   userSession(auth.RoleURLViewer),
			want:   RedirectHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.intent, tt.sess))
		})
	}
}

func TestGuard_RestoresBeforeDeciding(t *testing.T) {
	src := &fakeSessionSource{sess: userSession(auth.RoleURLViewer)}
	intent, ok := route.Lookup(route.URLs)
	require.True(t, ok)

	called := false
	handler := Guard(src, intent)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		sess, found := SessionFromContext(r.Context())
		assert.True(t, found)
		assert.Equal(t, "amy", sess.Identity.Username)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/urls", nil))

	assert.True(t, called)
	assert.Equal(t, 1, src.restored)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuard_BrowserRedirect(t *testing.T) {
	src := &fakeSessionSource{sess: guestSession()}
	intent, ok := route.Lookup(route.Home)
	require.True(t, ok)

	handler := Guard(src, intent)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for a denied navigation")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGuard_JSONRedirect(t *testing.T) {
	src := &fakeSessionSource{sess: userSession()}
	intent, ok := route.Lookup(route.Login)
	require.True(t, ok)

	handler := Guard(src, intent)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for a denied navigation")
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/", body["redirect_to"])
}
