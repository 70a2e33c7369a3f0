// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"roster/config"
	"roster/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret      string        // Process-wide secret for signing session tokens.
	sessionTTL  time.Duration // Lifetime of a default session token.
	extendedTTL time.Duration // Lifetime when the caller asks to be remembered.
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a fatal startup-time condition, not a per-request error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	sessionTTL := time.Hour
	extendedTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.SessionTokenTTL > 0 {
			sessionTTL = cfg.Auth.SessionTokenTTL
		}
		if cfg.Auth.ExtendedSessionTokenTTL > 0 {
			extendedTTL = cfg.Auth.ExtendedSessionTokenTTL
		}
	}

	return &jwtService{
		secret:      cfg.SecretKey.Session,
		sessionTTL:  sessionTTL,
		extendedTTL: extendedTTL,
	}, nil
}

// Issue creates a signed session token whose subject is the user's ID.
func (s *jwtService) Issue(userID uuid.UUID, extended bool) (string, error) {
	ttl := s.sessionTTL
	if extended {
		ttl = s.extendedTTL
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	var registered jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: registered,
	}, nil
}
