package usecase

import (
	"context"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkOutcome describes what a provider callback did to the identity store.
type LinkOutcome string

const (
	OutcomeCreated  LinkOutcome = "created"  // A new identity was created for the provider account.
	OutcomeLinked   LinkOutcome = "linked"   // The provider account was attached to the signed-in identity.
	OutcomeRelinked LinkOutcome = "relinked" // The signed-in identity already owned the link; only the credential changed.
	OutcomeLogin    LinkOutcome = "login"    // An existing link was found and its identity logged in.
)

// CallbackInput is a provider callback after the code exchange, translated
// into provider-neutral fields.
type CallbackInput struct {
	RequestingIdentityID *uuid.UUID // Set when a signed-in user is linking a provider.
	Provider             entity.ProviderKind
	SubjectID            string
	Profile              entity.ProfileFields
	Credential           entity.AccessCredential
}

// CallbackOutput is the identity the callback resolved to.
type CallbackOutput struct {
	Identity *entity.Identity
	Outcome  LinkOutcome
}

// IdentityLinker resolves provider callbacks into create, link, login or
// reject decisions.
type IdentityLinker interface {
	HandleCallback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error)
}
