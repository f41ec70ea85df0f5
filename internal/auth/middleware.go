package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tridash/internal/domain"
)

const claimsContextKey = "authClaims"

// Middleware validates bearer tokens and enforces role-based access.
// Requests without a valid token for one of the allowed roles are rejected.
func Middleware(mgr *Manager, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := mgr.ParseAndValidate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if !roleAllowed(claims.Role, allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrRoleForbidden.Error()})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom extracts the validated claims set by Middleware.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
