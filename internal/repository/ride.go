package repository

import (
	"context"
	"time"

	"tridash/internal/domain"
)

// RideRepository defines the persistence operations for rides.
type RideRepository interface {
	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAll retrieves all rides, newest first.
	GetAll(ctx context.Context) ([]*domain.Ride, error)

	// GetCreatedSince retrieves rides created at or after the given time.
	GetCreatedSince(ctx context.Context, since time.Time) ([]*domain.Ride, error)
}
