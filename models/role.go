package models

// Role is the privilege level of a user account.
//
// The database stores roles as a single character: "Y" for administrators and
// "N" for standard users. Any other stored value is treated as standard — the
// admin check is always an exact match against [RoleAdmin], so unexpected data
// can never grant elevated privileges.
type Role string

const (
	// RoleAdmin marks an account with administrative privileges.
	RoleAdmin Role = "Y"

	// RoleStandard marks an ordinary account.
	RoleStandard Role = "N"
)

// ParseRole converts a stored role value into a Role.
// Everything except "Y" maps to [RoleStandard].
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleStandard
}

// IsAdmin reports whether the role grants administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String returns the single-character database representation of the role.
func (r Role) String() string {
	return string(r)
}
