package userauth

// UserRole is the user's role.
type UserRole = string

const (
	// RoleUser is a regular end user.
	RoleUser UserRole = "user"
	// RoleAdmin is an administrative user.
	RoleAdmin UserRole = "admin"
)

// ValidRoles lists every accepted role, in schema order.
var ValidRoles = []any{RoleUser, RoleAdmin}

// IsValidRole checks the closed role enum. Defaults are never assumed; a
// role must be supplied and validated on sign-up.
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
