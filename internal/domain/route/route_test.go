package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkly/linkly-ui/internal/domain/auth"
)

func TestTable_LoginIsTheOnlyGuestDestination(t *testing.T) {
	for _, intent := range Table() {
		if intent.Name == Login {
			assert.True(t, intent.GuestOnly)
			assert.False(t, intent.RequiresAuth)
			continue
		}
		assert.True(t, intent.RequiresAuth, "%s must require authentication", intent.Name)
		assert.False(t, intent.GuestOnly, "%s must not be guest-only", intent.Name)
	}
}

func TestTable_PermissionAssignments(t *testing.T) {
	tests := []struct {
		name  Name
		perms []auth.Permission
	}{
		{name: Home, perms: nil},
		{name: Shorten, perms: []auth.Permission{auth.PermCreateURL}},
		{name: URLs, perms: []auth.Permission{auth.PermViewURL}},
		{name: Analytics, perms: []auth.Permission{auth.PermViewAnalytics}},
		{name: QRGenerator, perms: []auth.Permission{auth.PermCreateQR}},
		{name: QRCodes, perms: []auth.Permission{auth.PermViewQR}},
		{name: Users, perms: []auth.Permission{auth.PermViewUsers, auth.PermManageUsers}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			intent, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.perms, intent.RequiredPermissions)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("settings")
	assert.False(t, ok)
}
