package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionConfig controls the session cookie. The session itself is stateless:
// the signed token in the cookie is the only server-issued credential, and
// nothing is stored server-side.
type SessionConfig struct {
	CookieName string
	// MaxAge in seconds; also the token lifetime communicated to the browser.
	MaxAge int
	// Secure must be true outside local development.
	Secure bool
}

// SetSessionCookie stores the token in an HTTP-only, SameSite=Lax cookie on
// the root path.
func (sc SessionConfig) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.CookieName, token, sc.MaxAge, "/", "", sc.Secure, true)
}

// SessionToken reads the session token from the request cookie.
func (sc SessionConfig) SessionToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(sc.CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// ClearSessionCookie removes the cookie entirely (negative max-age), so a
// stale cookie cannot keep passing the edge gate's structural check.
func (sc SessionConfig) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.CookieName, "", -1, "/", "", sc.Secure, true)
}
