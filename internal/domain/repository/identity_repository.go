// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrConflict is returned when a write would break a uniqueness rule:
	// a (kind, subject) pair or an email already owned by another identity.
	ErrConflict = errors.New("identity uniqueness conflict")
)

// IdentityRepository stores identities together with their provider links.
type IdentityRepository interface {
	// FindByID retrieves an identity with all of its links.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves the identity owning the given normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByProviderSubject retrieves the identity holding the link (kind, subjectID).
	FindByProviderSubject(ctx context.Context, kind entity.ProviderKind, subjectID string) (*entity.Identity, error)

	// CreateUnique inserts a new identity and its links in one atomic step.
	// It fails with ErrConflict when any link subject or the email is already taken,
	// in which case nothing is written.
	CreateUnique(ctx context.Context, identity *entity.Identity) error

	// Save persists scalar fields, profile and the link set of an existing identity.
	// Links missing from identity.Links are removed. Credentials of links that
	// already exist are left untouched; they only change through CredentialRepository.
	// A new link whose subject is owned elsewhere fails with ErrConflict.
	Save(ctx context.Context, identity *entity.Identity) error

	// Delete removes the identity, cascading to its links, credentials and verification tokens.
	Delete(ctx context.Context, id uuid.UUID) error
}
