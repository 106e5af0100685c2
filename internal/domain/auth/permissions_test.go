package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionWithRoles(roles ...string) Session {
	return Session{Token: "tok", Identity: &Identity{Username: "u", Roles: roles}}
}

func TestHasPermission_SuperUserGetsEverything(t *testing.T) {
	sess := sessionWithRoles(RoleSuperUser)
	for _, kind := range Permissions() {
		assert.True(t, sess.HasPermission(kind), "SuperUser should hold %s", kind)
	}
}

func TestHasPermission_SuperUserWithWhitespaceRole(t *testing.T) {
	// Role strings from older backends carry interior whitespace.
	sess := sessionWithRoles("Super User")
	for _, kind := range Permissions() {
		assert.True(t, sess.HasPermission(kind), "whitespace SuperUser should hold %s", kind)
	}
}

func TestHasPermission_SystemAdminGetsEverything(t *testing.T) {
	sess := sessionWithRoles(RoleSystemAdmin)
	for _, kind := range Permissions() {
		assert.True(t, sess.HasPermission(kind), "SystemAdmin should hold %s", kind)
	}
}

func TestHasPermission_NoIdentity(t *testing.T) {
	sess := Session{Token: "tok"}
	for _, kind := range Permissions() {
		assert.False(t, sess.HasPermission(kind), "identityless session must not hold %s", kind)
	}
}

func TestHasPermission_RoleMatrix(t *testing.T) {
	tests := []struct {
		role    string
		granted []Permission
	}{
		{role: RoleURLViewer, granted: []Permission{PermViewURL}},
		{role: RoleURLCreator, granted: []Permission{PermCreateURL, PermViewURL}},
		{role: RoleURLManager, granted: []Permission{PermCreateURL, PermViewURL, PermManageURL}},
		{role: RoleQRViewer, granted: []Permission{PermViewQR}},
		{role: RoleQRCreator, granted: []Permission{PermCreateQR, PermViewQR}},
		{role: RoleQRManager, granted: []Permission{PermCreateQR, PermViewQR, PermManageQR}},
		{role: RoleAnalyticsViewer, granted: []Permission{PermViewAnalytics}},
		{role: RoleAnalyticsManager, granted: []Permission{PermViewAnalytics, PermManageAnalytics}},
		{role: RoleUserViewer, granted: []Permission{PermViewUsers}},
		{role: RoleUserManager, granted: []Permission{PermViewUsers, PermManageUsers}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			sess := sessionWithRoles(tt.role)
			want := make(map[Permission]bool, len(tt.granted))
			for _, p := range tt.granted {
				want[p] = true
			}
			for _, kind := range Permissions() {
				assert.Equal(t, want[kind], sess.HasPermission(kind),
					"role %s permission %s", tt.role, kind)
			}
		})
	}
}

func TestHasPermission_UnknownRole(t *testing.T) {
	sess := sessionWithRoles("Auditor")
	for _, kind := range Permissions() {
		assert.False(t, sess.HasPermission(kind))
	}
}

func TestHasAnyPermission(t *testing.T) {
	sess := sessionWithRoles(RoleUserViewer)

	assert.True(t, sess.HasAnyPermission(PermViewUsers, PermManageUsers))
	assert.True(t, sess.HasAnyPermission(PermManageUsers, PermViewUsers))
	assert.False(t, sess.HasAnyPermission(PermManageUsers))
	assert.False(t, sess.HasAnyPermission())
}
