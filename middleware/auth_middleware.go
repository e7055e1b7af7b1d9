package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshmart-backend/models"
	"freshmart-backend/services"
)

// TokenVerifier verifies a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*models.TokenClaims, error)
}

// SessionRequired fully verifies the session cookie before letting the
// request through. Handlers behind it can read "username" and "role"
// from the context.
func SessionRequired(session services.SessionConfig, tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := session.SessionToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
