package repository

import (
	"context"
	"errors"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no verification token matches the hash.
var ErrTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository stores hashed verification tokens.
type VerificationTokenRepository interface {
	// Replace atomically drops every token of the same identity and purpose and stores token.
	Replace(ctx context.Context, token *entity.VerificationToken) error

	// FindByHash retrieves a token by purpose and hash.
	FindByHash(ctx context.Context, purpose entity.TokenPurpose, tokenHash string) (*entity.VerificationToken, error)

	// DeleteByHash removes the token and reports whether this call removed it.
	// Exactly one of several concurrent callers observes true.
	DeleteByHash(ctx context.Context, purpose entity.TokenPurpose, tokenHash string) (bool, error)

	// DeleteByIdentity removes every token owned by the identity.
	DeleteByIdentity(ctx context.Context, identityID uuid.UUID) error
}
