package helpers

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload issued at login and attached to the gin
// context by the auth middleware.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *Claims) IsOwner(userID string) bool {
	return c.UserID == userID
}

func (c *Claims) GetSafeRole() string {
	if c.Role == "" {
		return "user"
	}
	return c.Role
}
