package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freshmart-backend/models"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for every verification failure. Callers must
// not learn whether a token was malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService creates and validates session JWTs.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: []byte(secret), ttl: ttl}
}

// Issue signs a session token carrying the user's identity claims.
func (s *TokenService) Issue(user *models.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify parses and validates a token string. Expiry is judged against the
// wall clock at call time.
func (s *TokenService) Verify(tokenStr string) (*models.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return nil, ErrInvalidToken
	}

	return &models.TokenClaims{Username: username, Role: role}, nil
}

// HasTokenShape reports whether a string has the three dot-separated segments
// of a signed token. It is a structural check only; the edge gate uses it to
// avoid running signature verification on every request.
func HasTokenShape(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
