package service

import (
	"context"

	"tridash/internal/domain"
	"tridash/internal/repository"
)

// UserService handles user account moderation.
type UserService struct {
	profileRepo repository.ProfileRepository
}

// NewUserService creates a new UserService.
func NewUserService(profileRepo repository.ProfileRepository) *UserService {
	return &UserService{profileRepo: profileRepo}
}

// ListUsers returns all profiles.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

// Enable re-activates a user account.
func (s *UserService) Enable(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}
	return s.profileRepo.SetActive(ctx, userID, true)
}

// Disable deactivates a user account. Disabled accounts cannot sign in; their
// historical rides and payments remain in the aggregates.
func (s *UserService) Disable(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}
	return s.profileRepo.SetActive(ctx, userID, false)
}
