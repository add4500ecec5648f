package usecase

import (
	"context"
	"time"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/google/uuid"
)

// IssuedToken is the raw token value handed to the mailer. Only its hash is stored.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// ConsumeFunc applies the effect of a consumed token inside the same transaction
// that clears it. Returning an error keeps the token.
type ConsumeFunc func(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) error

// VerificationTokenService issues and checks single-use tokens for email
// verification and password reset.
type VerificationTokenService interface {
	// Issue creates a token and invalidates any earlier token of the same purpose.
	Issue(ctx context.Context, identityID uuid.UUID, purpose entity.TokenPurpose) (*IssuedToken, error)

	// Validate returns the owning identity. An expired token is removed, so
	// asking again reports it as invalid.
	Validate(ctx context.Context, value string, purpose entity.TokenPurpose) (uuid.UUID, error)

	// Consume validates the token, runs apply and clears the token, all in one
	// transaction.
	Consume(ctx context.Context, value string, purpose entity.TokenPurpose, apply ConsumeFunc) error
}
