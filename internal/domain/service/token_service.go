package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	IdentityID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates the tokens that identify the active identity.
type SessionTokenService interface {
	// Issue creates a signed session token for the identity.
	Issue(identityID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Validate checks signature and expiry and returns the claims.
	Validate(token string) (*SessionClaims, error)
}
