package service

import (
	"context"
	"time"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderGrant is what a provider hands back after a successful code exchange,
// already translated into provider-neutral shapes.
type ProviderGrant struct {
	SubjectID  string
	Profile    entity.ProfileFields
	Credential entity.AccessCredential
}

// ProviderClient talks to one OAuth2 provider.
//
// Refresh fails with ErrReauthRequired when the provider rejects the refresh
// token itself, and with ErrTransientProvider for any other failure including
// timeouts.
type ProviderClient interface {
	Kind() entity.ProviderKind
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*ProviderGrant, error)
	Refresh(ctx context.Context, refreshToken string) (entity.AccessCredential, error)
	FetchProfile(ctx context.Context, accessToken string) (subjectID string, profile entity.ProfileFields, err error)
}

// ProviderRegistry resolves the client for a provider kind.
type ProviderRegistry interface {
	// Client fails with ErrUnknownProvider when no client is configured for kind.
	Client(kind entity.ProviderKind) (ProviderClient, error)
	Kinds() []entity.ProviderKind
}

// OAuthState is what the authorize redirect remembers until the callback.
type OAuthState struct {
	Provider           entity.ProviderKind
	RequestingIdentity *uuid.UUID // Set when a signed-in identity is linking a new provider.
	CreatedAt          time.Time
}

// OAuthStateStore keeps one-time CSRF states between authorize and callback.
type OAuthStateStore interface {
	Issue(ctx context.Context, state OAuthState) (string, error)
	// Consume returns and forgets the state. Unknown or expired values fail with ErrOAuthStateInvalid.
	Consume(ctx context.Context, value string) (*OAuthState, error)
}
