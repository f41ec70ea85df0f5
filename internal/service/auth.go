package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tridash/internal/auth"
	"tridash/internal/domain"
	"tridash/internal/repository"
)

// AuthService handles staff authentication.
type AuthService struct {
	profileRepo repository.ProfileRepository
	tokens      *auth.Manager
}

// NewAuthService creates a new AuthService.
func NewAuthService(profileRepo repository.ProfileRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

// LoginResult carries the issued token and the authenticated profile.
type LoginResult struct {
	Token   string
	Profile *domain.Profile
}

// Login authenticates a staff member and issues a JWT.
// Only admin profiles may sign in to the dashboard.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a bad password so login probing can't enumerate accounts.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if profile.Role != domain.RoleAdmin {
		return nil, ErrNotStaff
	}

	if !profile.Active {
		return nil, ErrAccountDisabled
	}

	token, _, err := s.tokens.Issue(profile.ID, profile.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Profile: profile}, nil
}
