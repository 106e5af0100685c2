package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/service"
)

// SessionServiceInterface defines the session operations the handlers use.
type SessionServiceInterface interface {
	SessionSource
	Login(ctx context.Context, username, password string) bool
	Signup(ctx context.Context, in service.SignupInput) bool
	Logout(ctx context.Context)
	LastError() string
}

// SessionHandlers provides HTTP handlers for login, signup, logout, and the
// session status endpoint.
type SessionHandlers struct {
	Svc    SessionServiceInterface
	Logger *slog.Logger
}

// credentialsPayload is the login/signup request body.
type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Login handles POST /login.
func (h *SessionHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentialsPayload
	if !DecodeJSON(w, r, &creds) {
		return
	}
	if creds.Username == "" || creds.Password == "" {
		WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if !h.Svc.Login(r.Context(), creds.Username, creds.Password) {
		WriteError(w, http.StatusUnauthorized, h.Svc.LastError())
		return
	}
	writeSessionStatus(w, h.Svc.Current())
}

// Signup handles POST /signup. Success auto-authenticates the new account.
func (h *SessionHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var creds credentialsPayload
	if !DecodeJSON(w, r, &creds) {
		return
	}
	if creds.Username == "" || creds.Password == "" {
		WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	ok := h.Svc.Signup(r.Context(), service.SignupInput{
		Username: creds.Username,
		Password: creds.Password,
		Email:    creds.Email,
		FullName: creds.FullName,
	})
	if !ok {
		WriteError(w, http.StatusUnauthorized, h.Svc.LastError())
		return
	}
	writeSessionStatus(w, h.Svc.Current())
}

// Logout handles POST /logout. It always succeeds and sends the user to the
// login destination.
func (h *SessionHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Svc.Logout(r.Context())

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": loginPath,
		})
		return
	}
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// LoginPage handles GET /login: the guest view's state, including the last
// authentication error for the form to render.
func (h *SessionHandlers) LoginPage(w http.ResponseWriter, _ *http.Request) {
	payload := map[string]any{"authenticated": false}
	if msg := h.Svc.LastError(); msg != "" {
		payload["error"] = msg
	}
	WriteJSON(w, http.StatusOK, payload)
}

// Status handles GET /session. It is not guarded; unauthenticated callers get
// a plain negative answer.
func (h *SessionHandlers) Status(w http.ResponseWriter, r *http.Request) {
	if !h.Svc.Restore(r.Context()) {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeSessionStatus(w, h.Svc.Current())
}

// writeSessionStatus renders the session along with the derived permission
// matrix so the view layer never recomputes role logic.
func writeSessionStatus(w http.ResponseWriter, sess auth.Session) {
	perms := make(map[string]bool, len(auth.Permissions()))
	for _, kind := range auth.Permissions() {
		perms[string(kind)] = sess.HasPermission(kind)
	}

	payload := map[string]any{
		"authenticated": sess.IsAuthenticated(),
		"permissions":   perms,
		"super_user":    sess.IsSuperUser(),
	}
	if sess.Identity != nil {
		payload["user"] = map[string]any{
			"username": sess.Identity.Username,
			"roles":    sess.Identity.Roles,
		}
	}
	WriteJSON(w, http.StatusOK, payload)
}
