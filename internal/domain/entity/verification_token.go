package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenPurpose distinguishes what a verification token may be used for.
type TokenPurpose string

const (
	PurposeEmailVerify   TokenPurpose = "email-verify"
	PurposePasswordReset TokenPurpose = "password-reset"
)

// VerificationToken is a single-use, expiring token mailed to the owner of an identity.
// Only the SHA-256 hash of the raw value is persisted.
type VerificationToken struct {
	ID         uuid.UUID    // The unique ID for this token record.
	IdentityID uuid.UUID    // The identity this token belongs to.
	Purpose    TokenPurpose // What the token may be used for.
	TokenHash  string       // Hex-encoded SHA-256 hash of the raw token.
	ExpiresAt  time.Time    // The instant after which the token is rejected.
	CreatedAt  time.Time    // When the token was issued.
}

// IsExpired reports whether the token is past its expiry at now.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
