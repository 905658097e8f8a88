package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParentClaims defines the custom claims of a parent mode session token.
type ParentClaims struct {
	Mode string `json:"mode"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating parent session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateParentToken creates a token that expires at expiresAt.
	GenerateParentToken(expiresAt time.Time) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*ParentClaims, error)
}
