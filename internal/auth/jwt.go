// Package auth issues and validates staff access tokens.
package auth

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"tridash/internal/domain"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRoleForbidden is returned when the token's role is not allowed.
	ErrRoleForbidden = errors.New("role not allowed")
)

// Claims is the canonical JWT payload for staff tokens.
type Claims struct {
	Role domain.Role `json:"role"`
	jwtlib.RegisteredClaims
}

var _ jwtlib.Claims = (*Claims)(nil)

// Manager handles JWT creation and validation.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager. Panics on an empty secret since the
// service must never run with unsigned tokens.
func NewManager(secret string, ttl time.Duration) *Manager {
	s := strings.TrimSpace(secret)
	if s == "" {
		panic("auth: empty jwt secret")
	}
	return &Manager{secret: []byte(s), ttl: ttl}
}

// Issue returns a signed access token for the given profile.
func (m *Manager) Issue(profileID string, role domain.Role) (string, *Claims, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   profileID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	return signed, claims, err
}

// ParseAndValidate verifies the signature and standard claims.
func (m *Manager) ParseAndValidate(raw string) (*Claims, error) {
	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	claims := &Claims{}
	token, err := parser.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
