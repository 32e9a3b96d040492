package model

import "time"

// User is a registered account: either a citizen reporting animals or a
// rescue organization receiving reports for its area.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles.
const (
	RoleCitizen      = "citizen"
	RoleOrganization = "organization"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleCitizen || role == RoleOrganization
}
