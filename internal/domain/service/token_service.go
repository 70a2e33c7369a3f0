package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token for the given user. When extended
	// is true the token carries the long remember-me lifetime, otherwise the
	// short default lifetime.
	Issue(userID uuid.UUID, extended bool) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims.
	Validate(tokenString string) (*Claims, error)
}
