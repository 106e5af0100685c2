package httpx

import (
	"context"
	"net/http"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/domain/route"
)

// Decision is the outcome of an admission check.
type Decision int

const (
	// Admit lets the navigation proceed.
	Admit Decision = iota
	// RedirectLogin sends the user to the login destination.
	RedirectLogin
	// RedirectHome sends the user to the home destination.
	RedirectHome
)

// SessionSource exposes the session state the guard consults. Restore
// re-validates persisted state; the guard never trusts a stale snapshot.
type SessionSource interface {
	Restore(ctx context.Context) bool
	Current() auth.Session
}

// Decide evaluates a destination's access metadata against a session
// snapshot. It performs no I/O; callers restore the session first. The checks
// run in strict precedence: superuser gating first, then authentication, then
// permissions (any-of, superusers exempt), then guest-only. Denials are
// redirects, never errors.
func Decide(intent route.Intent, sess auth.Session) Decision {
	authenticated := sess.IsAuthenticated()

	if intent.SuperUserOnly {
		if !authenticated {
			return RedirectLogin
		}
		if !sess.IsSuperUser() {
			return RedirectHome
		}
	} else if intent.RequiresAuth && !authenticated {
		return RedirectLogin
	}

	if len(intent.RequiredPermissions) > 0 && authenticated && !sess.IsSuperUser() {
		if !sess.HasAnyPermission(intent.RequiredPermissions...) {
			return RedirectHome
		}
	}

	if intent.GuestOnly && authenticated {
		return RedirectHome
	}

	return Admit
}

// Guard returns a middleware enforcing a destination's access metadata. It
// restores the session, runs the admission predicate, and either redirects or
// admits with the session snapshot in the request context.
func Guard(sessions SessionSource, intent route.Intent) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessions.Restore(r.Context())
			sess := sessions.Current()

			switch Decide(intent, sess) {
			case RedirectLogin:
				redirectTo(w, r, loginPath)
			case RedirectHome:
				redirectTo(w, r, homePath)
			case Admit:
				ctx := SetSessionInContext(r.Context(), sess)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

const (
	homePath  = "/"
	loginPath = "/login"
)

// redirectTo issues a see-other redirect for browser navigations and a JSON
// payload for API-style callers that asked for JSON.
func redirectTo(w http.ResponseWriter, r *http.Request, target string) {
	if wantsJSON(r) {
		WriteJSON(w, http.StatusSeeOther, map[string]string{"redirect_to": target})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
