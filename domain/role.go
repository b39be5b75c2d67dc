package domain

import "fmt"

// Role is the closed set of user roles known to the messaging system.
// The initiation gate attaches a send policy to each role.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "jobseeker"
	RoleAdmin     Role = "admin"
)

// ParseRole converts an opaque role string coming from a token or a
// directory record into a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployer, RoleJobSeeker, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the resolved result of a credential check.
type Identity struct {
	UserID  string
	Role    Role
	Blocked bool
}
