package route

// Package route defines the static access-control metadata attached to every
// navigable destination. The admission guard evaluates an Intent against the
// current session; nothing here performs I/O.

import "github.com/linkly/linkly-ui/internal/domain/auth"

// Name identifies a navigable destination.
type Name string

const (
	Home        Name = "home"
	Login       Name = "login"
	Shorten     Name = "shorten"
	URLs        Name = "urls"
	Analytics   Name = "analytics"
	QRGenerator Name = "qr-generator"
	QRCodes     Name = "qr-codes"
	Users       Name = "users"
)

// Intent carries a destination's access-control metadata.
type Intent struct {
	Name Name
	Path string

	// RequiresAuth admits only authenticated sessions.
	RequiresAuth bool

	// GuestOnly admits only unauthenticated sessions (e.g. the login page).
	GuestOnly bool

	// RequiredPermissions admits authenticated non-superuser sessions only when
	// at least one listed permission is granted.
	RequiredPermissions []auth.Permission

	// SuperUserOnly admits only sessions carrying the SuperUser role. Checked
	// before RequiresAuth and RequiredPermissions.
	SuperUserOnly bool
}

// Table returns the navigable destinations and their metadata.
func Table() []Intent {
	return []Intent{
		{Name: Home, Path: "/", RequiresAuth: true},
		{Name: Login, Path: "/login", GuestOnly: true},
		{Name: Shorten, Path: "/shorten", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermCreateURL}},
		{Name: URLs, Path: "/urls", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermViewURL}},
		{Name: Analytics, Path: "/analytics", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermViewAnalytics}},
		{Name: QRGenerator, Path: "/qr-generator", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermCreateQR}},
		{Name: QRCodes, Path: "/qr-codes", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermViewQR}},
		{Name: Users, Path: "/users", RequiresAuth: true,
			RequiredPermissions: []auth.Permission{auth.PermViewUsers, auth.PermManageUsers}},
	}
}

// Lookup returns the intent for a destination name.
func Lookup(name Name) (Intent, bool) {
	for _, it := range Table() {
		if it.Name == name {
			return it, true
		}
	}
	return Intent{}, false
}
