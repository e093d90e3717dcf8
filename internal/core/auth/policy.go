package auth

import (
	"slices"

	"go-gin-gorm-crm/internal/domain"
)

// Policy is the set of roles allowed to invoke an operation.
type Policy []domain.UserRole

var (
	AdminOnly       = Policy{domain.RoleAdmin}
	ManagerOrAdmin  = Policy{domain.RoleAdmin, domain.RoleManager}
	UserOrAbove     = Policy{domain.RoleAdmin, domain.RoleManager, domain.RoleUser}
	ReadOnlyOrAbove = Policy{domain.RoleAdmin, domain.RoleManager, domain.RoleUser, domain.RoleReadOnly}
)

// Allows reports whether role satisfies p. An empty policy only requires a
// valid login.
func (p Policy) Allows(role string) bool {
	if len(p) == 0 {
		return true
	}
	return slices.Contains(p, domain.UserRole(role))
}
