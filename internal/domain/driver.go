package domain

import "time"

// VerificationStatus represents a driver's onboarding disposition.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Driver represents a tricycle driver in the system.
//
// The raw columns are not mutually exclusive: a suspended driver keeps
// approved=true so the approval survives reinstatement. Suspension is an
// override on top of approval, never a replacement for it.
type Driver struct {
	ID                 string
	UserID             string
	Approved           bool
	Rejected           bool
	Suspended          bool
	VerificationStatus VerificationStatus
	Online             bool
	Rating             float64
	TotalRides         int
	CompletedRides     int
	TotalEarnings      float64
	CreatedAt          time.Time
}

// IsVerified reports whether the driver has passed onboarding.
func (d Driver) IsVerified() bool {
	return d.Approved || d.VerificationStatus == VerificationVerified
}

// DriverVehicle represents a tricycle registered to a driver.
type DriverVehicle struct {
	ID       string
	DriverID string
	Plate    string
	Model    string
	Color    string
	Capacity int
}
