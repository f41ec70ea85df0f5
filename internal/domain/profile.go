package domain

import "time"

// Role represents a profile's role on the platform.
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
	RoleAdmin     Role = "admin"
)

// Profile represents a platform user account.
type Profile struct {
	ID               string
	Email            string
	FullName         string
	Phone            string
	Role             Role
	PasswordHash     string
	IsDriverApproved bool
	Online           bool
	Active           bool
	Rating           float64
	CreatedAt        time.Time
}
