package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/ports"
)

// Generic user-facing messages when the API response carries no `error` field.
const (
	loginFallbackMessage  = "Login failed. Please check your credentials."
	signupFallbackMessage = "Signup failed. Please try again."
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Storage ports.Storage
	API     ports.Client
	Logger  *slog.Logger
}

// SessionService is the single source of truth for who is logged in and what
// they can do. It owns the bearer token and identity, writes them through to
// persisted storage, and arms the API client's default bearer token so callers
// never observe a token that is set but not yet attached to requests.
type SessionService struct {
	storage ports.Storage
	api     ports.Client
	logger  *slog.Logger

	mu       sync.RWMutex
	session  auth.Session
	loading  bool
	lastErr  string
	restored bool
}

// NewSessionService constructs a SessionService. The session starts empty;
// call Restore to hydrate it from persisted storage.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		storage: opts.Storage,
		api:     opts.API,
		logger:  logger,
	}
}

// Current returns a snapshot of the session. The identity is copied so callers
// cannot mutate shared state.
func (s *SessionService) Current() auth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// IsLoading reports whether a login or signup call is in flight. The UI uses
// it to serialize submissions; overlapping calls are not locked out here and
// the last resolving call wins.
func (s *SessionService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the user-facing message from the most recent failed login
// or signup, or empty when the last operation succeeded.
func (s *SessionService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Restore hydrates the session from persisted storage and reports whether the
// user is authenticated. The identity comes from the persisted snapshot when
// available, falling back to the token's embedded claims; a malformed token
// clears all session state. Restore is idempotent and cheap once hydrated, so
// the guard calls it before every navigation decision.
func (s *SessionService) Restore(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored && s.session.IsAuthenticated() && s.session.Identity != nil {
		return true
	}

	token := s.session.Token
	if token == "" {
		stored, err := s.storage.Get(ctx, ports.KeyToken)
		if err != nil {
			if !errors.Is(err, ports.ErrNotFound) {
				s.logger.WarnContext(ctx, "read persisted token failed", "error", err)
			}
			s.clearLocked(ctx)
			return false
		}
		token = stored
	}
	if token == "" {
		s.clearLocked(ctx)
		return false
	}

	s.session.Token = token
	s.api.SetToken(token)
	s.restored = true

	if s.session.Identity != nil {
		return true
	}

	// Persisted identity snapshot first; no token re-decoding when present.
	if raw, err := s.storage.Get(ctx, ports.KeyUser); err == nil {
		var identity auth.Identity
		if jsonErr := json.Unmarshal([]byte(raw), &identity); jsonErr == nil && identity.Username != "" {
			s.session.Identity = &identity
			return true
		}
		s.logger.WarnContext(ctx, "persisted identity snapshot unreadable, falling back to token claims")
	}

	// Fall back to the token's embedded claims.
	identity, err := identityFromToken(token)
	if err != nil {
		// Token present but undecodable is fatal to the session.
		s.logger.WarnContext(ctx, "token claims undecodable, clearing session", "error", err)
		s.clearLocked(ctx)
		return false
	}
	s.session.Identity = identity
	s.persistIdentityLocked(ctx, identity)
	return true
}

// Login authenticates against the API and reports success. On success the
// token and identity are set, persisted, and the API client's bearer token is
// armed before Login returns. On failure LastError carries a user-facing
// message and the session is left unchanged.
func (s *SessionService) Login(ctx context.Context, username, password string) bool {
	return s.authenticate(ctx, loginFallbackMessage, func() (model.AuthResponse, error) {
		return s.api.Login(ctx, model.Credentials{Username: username, Password: password})
	})
}

// SignupInput groups registration parameters.
type SignupInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// Signup registers a new account and, like Login, auto-authenticates it.
func (s *SessionService) Signup(ctx context.Context, in SignupInput) bool {
	return s.authenticate(ctx, signupFallbackMessage, func() (model.AuthResponse, error) {
		return s.api.Signup(ctx, model.Credentials{
			Username: in.Username,
			Password: in.Password,
			Email:    in.Email,
			FullName: in.FullName,
		})
	})
}

func (s *SessionService) authenticate(ctx context.Context, fallback string, call func() (model.AuthResponse, error)) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := call()
	if err != nil {
		s.setError(userMessage(err, fallback))
		return false
	}

	identity, err := identityFromResponse(resp)
	if err != nil {
		s.setError(fallback)
		s.logger.WarnContext(ctx, "auth response unusable", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = auth.Session{Token: resp.Token, Identity: identity}
	s.lastErr = ""
	s.restored = true
	s.api.SetToken(resp.Token)
	if err := s.storage.Set(ctx, ports.KeyToken, resp.Token); err != nil {
		s.logger.WarnContext(ctx, "persist token failed", "error", err)
	}
	s.persistIdentityLocked(ctx, identity)
	return true
}

// Logout clears the session, persisted storage, and the API client's bearer
// token. It always succeeds; no network call is involved.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
	s.lastErr = ""
}

// HasPermission reports whether the current session grants the permission.
func (s *SessionService) HasPermission(kind auth.Permission) bool {
	return s.Current().HasPermission(kind)
}

func (s *SessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.lastErr = ""
	}
	s.mu.Unlock()
}

func (s *SessionService) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// clearLocked wipes the in-memory session, persisted storage, and the armed
// API token. Callers hold s.mu.
func (s *SessionService) clearLocked(ctx context.Context) {
	s.session = auth.Session{}
	s.restored = false
	s.api.ClearToken()
	for _, key := range []string{ports.KeyToken, ports.KeyUser} {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "clear persisted session state failed", "key", key, "error", err)
		}
	}
}

func (s *SessionService) persistIdentityLocked(ctx context.Context, identity *auth.Identity) {
	raw, err := json.Marshal(identity)
	if err != nil {
		s.logger.WarnContext(ctx, "encode identity snapshot failed", "error", err)
		return
	}
	if err := s.storage.Set(ctx, ports.KeyUser, string(raw)); err != nil {
		s.logger.WarnContext(ctx, "persist identity snapshot failed", "error", err)
	}
}

// identityFromResponse maps the canonical `{token, user:{...}}` auth response,
// tolerating the deprecated `{token, username}` shape with an empty role set.
func identityFromResponse(resp model.AuthResponse) (*auth.Identity, error) {
	if resp.Token == "" {
		return nil, errors.New("auth response missing token")
	}
	if resp.User != nil && resp.User.Username != "" {
		return &auth.Identity{Username: resp.User.Username, Roles: resp.User.Roles}, nil
	}
	if resp.LegacyUsername != "" {
		return &auth.Identity{Username: resp.LegacyUsername}, nil
	}
	return nil, errors.New("auth response missing user")
}

// identityFromToken decodes the token's embedded claims without verifying the
// signature; the server remains the authority, this only recovers display
// state after a restart. The token must be a three-segment JWT whose payload
// carries at least `sub`.
func identityFromToken(token string) (*auth.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token claims missing sub")
	}

	identity := &auth.Identity{Username: sub}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				identity.Roles = append(identity.Roles, role)
			}
		}
	}
	return identity, nil
}

// userMessage extracts a user-facing message from an API error, preferring the
// response body's `error` field surfaced by the client adapter.
func userMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" && !apperrors.IsUnavailable(err) {
		return appErr.Message
	}
	return fallback
}

func copySession(s auth.Session) auth.Session {
	out := auth.Session{Token: s.Token}
	if s.Identity != nil {
		identity := auth.Identity{
			Username: s.Identity.Username,
			Roles:    append([]string(nil), s.Identity.Roles...),
		}
		out.Identity = &identity
	}
	return out
}
