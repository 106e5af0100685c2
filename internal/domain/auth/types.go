package auth

// Package auth contains domain-level types for sessions and authorization.
// It is pure and free of transport/adapter concerns.

import "strings"

// Identity represents the authenticated principal returned by the shortener API.
// Roles are free-form display strings (e.g. "Super User"); the server does not
// guarantee canonical casing or spacing, so comparisons go through NormalizeRole.
type Identity struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Session is the client-side authentication state: a bearer token plus the
// identity it belongs to. Token present without identity is a transient invalid
// state that Restore self-heals by clearing both.
type Session struct {
	Token    string
	Identity *Identity
}

// IsAuthenticated reports whether the session carries a bearer token.
func (s Session) IsAuthenticated() bool { return s.Token != "" }

// NormalizeRole strips all whitespace from a role name. Matching is
// case-sensitive afterwards. Normalization is idempotent.
func NormalizeRole(role string) string {
	return strings.Join(strings.Fields(role), "")
}

// Well-known normalized role names.
const (
	RoleSuperUser        = "SuperUser"
	RoleSystemAdmin      = "SystemAdmin"
	RoleURLViewer        = "UrlViewer"
	RoleURLCreator       = "UrlCreator"
	RoleURLManager       = "UrlManager"
	RoleQRViewer         = "QrViewer"
	RoleQRCreator        = "QrCreator"
	RoleQRManager        = "QrManager"
	RoleAnalyticsViewer  = "AnalyticsViewer"
	RoleAnalyticsManager = "AnalyticsManager"
	RoleUserViewer       = "UserViewer"
	RoleUserManager      = "UserManager"
)

// HasRole reports whether the session's identity carries the given role,
// compared after normalization on both sides.
func (s Session) HasRole(role string) bool {
	if s.Identity == nil {
		return false
	}
	want := NormalizeRole(role)
	for _, r := range s.Identity.Roles {
		if NormalizeRole(r) == want {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the identity carries at least one of the roles.
func (s Session) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if s.HasRole(r) {
			return true
		}
	}
	return false
}

// IsSuperUser reports whether the identity carries the SuperUser role.
func (s Session) IsSuperUser() bool { return s.HasRole(RoleSuperUser) }

// IsSystemAdmin reports whether the identity carries the SystemAdmin role.
func (s Session) IsSystemAdmin() bool { return s.HasRole(RoleSystemAdmin) }
