package domain

import "slices"

// Role names carried in admin bearer tokens.
const (
	RoleAdmin      = "fact-admin"
	RoleSuperAdmin = "fact-super-admin"
)

// Caller is the authenticated identity on whose behalf a mutation runs.
// It is resolved by the transport and passed explicitly into services.
type Caller struct {
	Email string
	Roles []string
}

// HasRole reports whether the caller carries role.
func (c Caller) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole reports whether the caller carries at least one of roles.
func (c Caller) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// IsSuperAdmin reports whether the caller may edit restricted court fields.
func (c Caller) IsSuperAdmin() bool {
	return c.HasRole(RoleSuperAdmin)
}
