package auth

// Permission is a derived boolean capability computed from roles. Permissions
// are never stored; they are recomputed from the identity's role set against a
// fixed allow-list per permission kind.
type Permission string

const (
	PermCreateURL       Permission = "createUrl"
	PermViewURL         Permission = "viewUrl"
	PermManageURL       Permission = "manageUrl"
	PermCreateQR        Permission = "createQr"
	PermViewQR          Permission = "viewQr"
	PermManageQR        Permission = "manageQr"
	PermViewAnalytics   Permission = "viewAnalytics"
	PermManageAnalytics Permission = "manageAnalytics"
	PermViewUsers       Permission = "viewUsers"
	PermManageUsers     Permission = "manageUsers"
)

// Permissions lists every permission kind.
func Permissions() []Permission {
	return []Permission{
		PermCreateURL, PermViewURL, PermManageURL,
		PermCreateQR, PermViewQR, PermManageQR,
		PermViewAnalytics, PermManageAnalytics,
		PermViewUsers, PermManageUsers,
	}
}

// permissionRoles maps each permission kind to the normalized role names that
// grant it. SuperUser and SystemAdmin appear in every list.
var permissionRoles = map[Permission][]string{
	PermCreateURL:       {RoleSuperUser, RoleSystemAdmin, RoleURLCreator, RoleURLManager},
	PermViewURL:         {RoleSuperUser, RoleSystemAdmin, RoleURLViewer, RoleURLCreator, RoleURLManager},
	PermManageURL:       {RoleSuperUser, RoleSystemAdmin, RoleURLManager},
	PermCreateQR:        {RoleSuperUser, RoleSystemAdmin, RoleQRCreator, RoleQRManager},
	PermViewQR:          {RoleSuperUser, RoleSystemAdmin, RoleQRViewer, RoleQRCreator, RoleQRManager},
	PermManageQR:        {RoleSuperUser, RoleSystemAdmin, RoleQRManager},
	PermViewAnalytics:   {RoleSuperUser, RoleSystemAdmin, RoleAnalyticsViewer, RoleAnalyticsManager},
	PermManageAnalytics: {RoleSuperUser, RoleSystemAdmin, RoleAnalyticsManager},
	PermViewUsers:       {RoleSuperUser, RoleSystemAdmin, RoleUserViewer, RoleUserManager},
	PermManageUsers:     {RoleSuperUser, RoleSystemAdmin, RoleUserManager},
}

// HasPermission reports whether the identity's role set grants the permission.
// Returns false when no identity is present, regardless of token presence.
func (s Session) HasPermission(kind Permission) bool {
	if s.Identity == nil {
		return false
	}
	allowed, ok := permissionRoles[kind]
	if !ok {
		return false
	}
	return s.HasAnyRole(allowed...)
}

// HasAnyPermission reports whether at least one of the given permissions is
// granted.
func (s Session) HasAnyPermission(kinds ...Permission) bool {
	for _, k := range kinds {
		if s.HasPermission(k) {
			return true
		}
	}
	return false
}
