package tests

import (
	"context"
	"testing"

	"tridash/internal/domain"
	"tridash/internal/repository"
	"tridash/internal/service"
)

// ──────────────────────────────────────────────
// USER ACCOUNT MANAGEMENT
// ──────────────────────────────────────────────

func TestUserService_DisableAndEnable(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	profileRepo.AddProfile(&domain.Profile{
		ID:     "user-1",
		Email:  "maria@tridash.ph",
		Role:   domain.RolePassenger,
		Active: true,
	})

	svc := service.NewUserService(profileRepo)
	ctx := context.Background()

	if err := svc.Disable(ctx, "user-1"); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if profileRepo.GetProfile("user-1").Active {
		t.Error("expected active=false after disable")
	}

	if err := svc.Enable(ctx, "user-1"); err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	if !profileRepo.GetProfile("user-1").Active {
		t.Error("expected active=true after enable")
	}
}

func TestUserService_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(NewMockProfileRepository())

	if err := svc.Disable(context.Background(), "nope"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_EmptyID(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(NewMockProfileRepository())

	if err := svc.Enable(context.Background(), ""); err != service.ErrInvalidUserID {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}
