package services

import (
	"crypto/subtle"

	"freshmart-backend/models"
)

// AuthService checks submitted credentials against the configured admin
// account. There is no user database; the credentials live in process
// configuration. There is also no lockout or rate limiting — a documented
// property of this system, not an omission.
type AuthService struct {
	username     string
	password     string
	passwordHash string
}

func NewAuthService(username, password, passwordHash string) *AuthService {
	return &AuthService{username: username, password: password, passwordHash: passwordHash}
}

// Validate returns the admin identity on a match and nil otherwise. No
// normalization is applied to either field. When a password hash is
// configured it takes precedence over the plain password.
func (s *AuthService) Validate(username, password string) *models.AdminUser {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return nil
	}

	if s.passwordHash != "" {
		if !VerifyPassword(password, s.passwordHash) {
			return nil
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil
	}

	return &models.AdminUser{Username: username, Role: models.RoleAdmin}
}
