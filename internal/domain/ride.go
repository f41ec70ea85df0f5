package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusRequested  RideStatus = "requested"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusArrived    RideStatus = "arrived"
	RideStatusStarted    RideStatus = "started"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
	RideStatusPaid       RideStatus = "PAID"
)

// IsTerminal reports whether the ride has reached a final charged state.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusPaid
}

// IsActive reports whether the ride is still in flight.
func (s RideStatus) IsActive() bool {
	switch s {
	case RideStatusRequested, RideStatusAccepted, RideStatusArrived, RideStatusStarted, RideStatusInProgress:
		return true
	}
	return false
}

// Ride represents a tricycle ride as stored by the backend.
type Ride struct {
	ID             string
	PassengerID    string
	DriverID       string
	Status         RideStatus
	Fare           float64
	ActualFare     *float64 // nil until the final charged amount is recorded
	PickupAddress  string
	DropoffAddress string
	DistanceKm     float64
	DurationMin    float64
	CreatedAt      time.Time
}

// ChargedAmount returns the authoritative charged amount for the ride:
// actual_fare when recorded, otherwise the quoted fare.
func (r Ride) ChargedAmount() float64 {
	if r.ActualFare != nil {
		return *r.ActualFare
	}
	return r.Fare
}
