package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteAuthorizationInput is what a provider redirect carries back.
type CompleteAuthorizationInput struct {
	Provider entity.ProviderKind
	State    string
	Code     string
}

// ProviderLoginOutput is the result of a completed provider round trip.
type ProviderLoginOutput struct {
	AuthOutput
	Outcome LinkOutcome
}

// ProviderAuthUsecase drives the provider authorize and callback round trip,
// and the provider-scoped operations behind the session gate.
type ProviderAuthUsecase interface {
	// BeginAuthorization returns the provider URL to redirect the browser to.
	// requesting is set when a signed-in identity wants to link the provider.
	BeginAuthorization(ctx context.Context, kind entity.ProviderKind, requesting *uuid.UUID) (string, error)

	CompleteAuthorization(ctx context.Context, input *CompleteAuthorizationInput) (*ProviderLoginOutput, error)

	// FetchProviderProfile reads the current profile from the provider using
	// the stored credential, refreshing it first if needed.
	FetchProviderProfile(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProfileFields, error)
}
