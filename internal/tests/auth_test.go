package tests

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tridash/internal/auth"
	"tridash/internal/domain"
	"tridash/internal/service"
)

// ──────────────────────────────────────────────
// STAFF AUTHENTICATION
// ──────────────────────────────────────────────

func newAuthFixture(t *testing.T) (*service.AuthService, *MockProfileRepository, *auth.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	profileRepo := NewMockProfileRepository()
	profileRepo.AddProfile(&domain.Profile{
		ID:           "admin-1",
		Email:        "ops@tridash.ph",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	})
	profileRepo.AddProfile(&domain.Profile{
		ID:           "rider-1",
		Email:        "rider@tridash.ph",
		PasswordHash: string(hash),
		Role:         domain.RolePassenger,
		Active:       true,
	})

	tokens := auth.NewManager("test-secret", time.Hour)
	return service.NewAuthService(profileRepo, tokens), profileRepo, tokens
}

func TestLogin_AdminGetsValidToken(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "ops@tridash.ph", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.Profile.ID != "admin-1" {
		t.Errorf("expected admin-1, got %s", result.Profile.ID)
	}

	claims, err := tokens.ParseAndValidate(result.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Subject != "admin-1" || claims.Role != domain.RoleAdmin {
		t.Errorf("unexpected claims: subject=%s role=%s", claims.Subject, claims.Role)
	}
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "  OPS@Tridash.PH ", "hunter22"); err != nil {
		t.Errorf("expected case-insensitive login, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "ops@tridash.ph", "wrong")
	if err != service.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "ghost@tridash.ph", "hunter22")
	if err != service.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_NonAdminRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "rider@tridash.ph", "hunter22")
	if err != service.ErrNotStaff {
		t.Errorf("expected ErrNotStaff, got %v", err)
	}
}

func TestLogin_DisabledAccountRejected(t *testing.T) {
	t.Parallel()

	svc, profileRepo, _ := newAuthFixture(t)
	if err := profileRepo.SetActive(context.Background(), "admin-1", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := svc.Login(context.Background(), "ops@tridash.ph", "hunter22")
	if err != service.ErrAccountDisabled {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	issuer := auth.NewManager("secret-a", time.Hour)
	verifier := auth.NewManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.ParseAndValidate(token); err == nil {
		t.Error("expected validation to fail under a different secret")
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewManager("test-secret", -time.Minute)

	token, _, err := tokens.Issue("admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := tokens.ParseAndValidate(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
