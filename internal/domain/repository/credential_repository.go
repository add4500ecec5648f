package repository

import (
	"context"
	"errors"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLinkNotFound is returned when the identity has no link for the provider.
	ErrLinkNotFound = errors.New("provider link not found")
	// ErrStaleCredential is returned when a write would move a credential's expiry backwards.
	ErrStaleCredential = errors.New("credential is older than the stored one")
)

// CredentialRepository backs the token vault. Every method is atomic per (identityID, kind).
type CredentialRepository interface {
	// FindLink returns the link with its current credential.
	FindLink(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error)

	// ReplaceCredential swaps the whole credential and clears the reauth flag.
	// It fails with ErrStaleCredential if the stored expiry is later than the new one.
	ReplaceCredential(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind, credential entity.AccessCredential) error

	// MarkReauthRequired flags the link so the next use is sent to the interactive login.
	MarkReauthRequired(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) error
}
