package model

// User is a managed account record.
type User struct {
	ID        string   `json:"id,omitempty"`
	Username  string   `json:"username"`
	Email     string   `json:"email,omitempty"`
	FullName  string   `json:"full_name,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Active    bool     `json:"active"`
	CreatedAt int64    `json:"created_at,omitempty"`
}

// CreateUserRequest creates or updates a managed account. Zero-valued fields
// are omitted on update.
type CreateUserRequest struct {
	Username string   `json:"username,omitempty"`
	Password string   `json:"password,omitempty"`
	Email    string   `json:"email,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// Credentials carries a username/password pair for login and signup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// AuthResponse is the canonical login/signup response shape. The deprecated
// legacy shape carried the username at the top level with no role list; see
// LegacyUsername.
type AuthResponse struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user,omitempty"`

	// LegacyUsername tolerates the deprecated `{token, username}` shape.
	LegacyUsername string `json:"username,omitempty"`
}

// AuthUser is the identity block of an auth response.
type AuthUser struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
