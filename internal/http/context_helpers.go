package httpx

import (
	"context"

	"github.com/linkly/linkly-ui/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so handlers and middleware share one key.
type sessionKey struct{}

// SetSessionInContext returns a child context carrying the session snapshot.
func SetSessionInContext(ctx context.Context, sess auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session snapshot from context and a boolean
// indicating presence. An absent session means the route was not guarded.
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	if sess, ok := ctx.Value(sessionKey{}).(auth.Session); ok {
		return sess, true
	}
	return auth.Session{}, false
}

// requestIDKey is an unexported context key type for request IDs.
type requestIDKey struct{}

// RequestIDFromContext returns the request ID set by the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
