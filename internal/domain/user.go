package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User is an account that owns settings. Users are read-only in this
// service: creation and deletion happen elsewhere.
type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}
