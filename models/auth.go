package models

// RoleAdmin is the only role the dashboard knows about.
const RoleAdmin = "admin"

// AdminUser is the identity asserted after a successful login. It is never
// persisted; it is rebuilt from token claims on each request.
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenClaims is the verified payload of a session token.
type TokenClaims struct {
	Username string
	Role     string
}
