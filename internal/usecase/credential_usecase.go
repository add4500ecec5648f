// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenVault holds the current provider credential of every link.
// All writes are whole-credential replacements keyed by (identity, provider).
type TokenVault interface {
	// Get returns a copy of the stored credential.
	Get(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error)

	// Update atomically replaces the stored credential. It never moves the
	// expiry backwards and clears a pending reauth flag.
	Update(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind, credential entity.AccessCredential) error

	// Link returns the full link, including its reauth flag.
	Link(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error)

	// MarkReauthRequired flags the link so later requests fail fast until the
	// user logs in with the provider again.
	MarkReauthRequired(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) error
}

// TokenRefresher keeps provider credentials usable.
type TokenRefresher interface {
	// EnsureFresh returns a credential that is not stale. A fresh credential is
	// returned without contacting the provider. Concurrent calls for the same
	// stale link share one refresh request.
	EnsureFresh(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error)
}

// SessionAuthorizer gates protected operations.
type SessionAuthorizer interface {
	// ResolveIdentity maps a session token to its identity.
	ResolveIdentity(ctx context.Context, sessionToken string) (*entity.Identity, error)

	// AuthorizeProvider returns a fresh credential for a provider-scoped
	// operation. A *domainerrors.ReauthRequiredError tells the caller where
	// to send the user.
	AuthorizeProvider(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error)
}
