// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passage/config"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/errors"
)

const (
	defaultSessionTTL = 24 * time.Hour
	sessionIssuer     = "passage"
)

// jwtService is a concrete implementation of the SessionTokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a session token whose subject is the identity ID.
func (s *jwtService) Issue(identityID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   identityID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// Validate checks the signature, the signing method and expiry of a session token.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	identityID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid subject")
	}
	claims.IdentityID = identityID

	return claims, nil
}
