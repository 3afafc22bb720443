package kernel

import "strings"

// Role is the caller's role in the shop. The lifecycle never authenticates a
// role, it only checks it against per-state permissions.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleClient  Role = "client"
)

// ParseRole normalises a role coming from a request header. Unknown roles are
// kept as-is: they simply never match a permission set.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role operates orders on behalf of the shop.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}

// Actor is the user performing an operation, as supplied by the caller.
type Actor struct {
	ID   string
	Role Role
}

// NewActor builds an actor from raw request values.
func NewActor(id string, role string) Actor {
	return Actor{ID: strings.TrimSpace(id), Role: ParseRole(role)}
}
