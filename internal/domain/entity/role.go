// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates a store administrator.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
	// RoleAgent indicates a delivery agent.
	RoleAgent Role = "agent"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleAgent:
		return true
	default:
		return false
	}
}

// RoleFromString converts an arbitrary string to a Role, falling back to
// RoleUser for unrecognized values. Registration honours a requested role
// only when it names one of the known roles.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
