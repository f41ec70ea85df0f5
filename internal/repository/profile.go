package repository

import (
	"context"

	"tridash/internal/domain"
)

// ProfileRepository defines the persistence operations for user profiles.
type ProfileRepository interface {
	// GetByID retrieves a profile by ID.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)

	// GetByEmail retrieves a profile by email address.
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// GetAll retrieves all profiles.
	GetAll(ctx context.Context) ([]*domain.Profile, error)

	// SetActive enables or disables a profile.
	SetActive(ctx context.Context, id string, active bool) error
}
