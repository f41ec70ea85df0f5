package repository

import (
	"context"

	"tridash/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// SetDisposition updates the moderation flags on a driver.
	SetDisposition(ctx context.Context, id string, approved, rejected, suspended bool, status domain.VerificationStatus) error
}

// VehicleRepository defines the persistence operations for driver vehicles.
type VehicleRepository interface {
	// GetByDriverID retrieves all vehicles registered to a driver.
	GetByDriverID(ctx context.Context, driverID string) ([]*domain.DriverVehicle, error)
}
