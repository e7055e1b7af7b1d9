package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freshmart-backend/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles admin login, logout and the session probe.
type AuthController struct {
	credentials CredentialValidator
	tokens      TokenIssuer
	session     services.SessionConfig
}

func NewAuthController(credentials CredentialValidator, tokens TokenIssuer, session services.SessionConfig) *AuthController {
	return &AuthController{
		credentials: credentials,
		tokens:      tokens,
		session:     session,
	}
}

// Login validates the admin credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user := ac.credentials.Validate(req.Username, req.Password)
	if user == nil {
		zap.L().Warn("Failed login attempt", zap.String("username", req.Username), zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.tokens.Issue(user)
	if err != nil {
		zap.L().Error("Failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	ac.session.SetSessionCookie(c, token)
	zap.L().Info("Admin logged in", zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Logout clears the session cookie. Idempotent; succeeds with or without
// an existing session.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.session.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the identity behind the verified session. SessionRequired has
// already populated the context keys.
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": c.GetString("username"),
		"role":     c.GetString("role"),
	})
}
