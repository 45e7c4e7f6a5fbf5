// Package auth holds the resolved request identity and the access decision
// applied by every resource service.
package auth

import "fmt"

// Role is the closed set of roles known to the system.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCitizen Role = "CITIZEN"
)

// ParseRole maps a stored role string onto the enum.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCitizen:
		return RoleCitizen, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Principal is the authenticated identity attached to a request. It is built
// once by the authenticator, placed in the request context as a value, and
// discarded when the request ends. It must never describe an inactive account.
type Principal struct {
	ID    int64
	Email string
	Name  string
	Role  Role
}

// Authority renders the authority string exposed to clients and request logs.
func (p Principal) Authority() string {
	return "ROLE_" + string(p.Role)
}

// CanAccess decides whether the principal may act on a resource instance
// owned by ownerID. Admins may act on everything; citizens only on rows they
// own. The switch is exhaustive over Role so an unmapped role denies.
func (p Principal) CanAccess(ownerID int64) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleCitizen:
		return p.ID == ownerID
	default:
		return false
	}
}
