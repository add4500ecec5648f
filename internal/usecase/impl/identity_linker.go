package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxLinkAttempts bounds how often a callback is re-evaluated after losing a
// uniqueness race. The second pass always sees the winner's row.
const maxLinkAttempts = 2

type identityLinker struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// IdentityLinkerParams holds dependencies for IdentityLinker, injected by Fx.
type IdentityLinkerParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewIdentityLinker creates the provider callback resolver.
func NewIdentityLinker(params IdentityLinkerParams) usecase.IdentityLinker {
	return &identityLinker{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *identityLinker) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleCallback applies the link decision table inside a transaction. A
// repository conflict means a concurrent callback created the same subject or
// email first, so the whole decision is taken again against the new state.
func (srv *identityLinker) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	if err := validateCallback(input); err != nil {
		return nil, err
	}
	normalized := *input
	normalized.Profile.Email = normalizeEmail(input.Profile.Email)
	input = &normalized

	logger := srv.log(ctx).With(
		slog.String("provider", input.Provider.String()),
		slog.String("subjectID", input.SubjectID),
	)

	var lastErr error
	for attempt := 1; attempt <= maxLinkAttempts; attempt++ {
		var output *usecase.CallbackOutput
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			if input.RequestingIdentityID != nil {
				output, err = srv.linkToRequester(ctx, repoFactory, input)
			} else {
				output, err = srv.resolveLogin(ctx, repoFactory, input)
			}

			return err
		})
		if err == nil {
			logger.Info("Provider callback resolved",
				slog.String("identityID", output.Identity.ID.String()),
				slog.String("outcome", string(output.Outcome)),
			)

			return output, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			logger.Info("Provider callback rejected", slog.Any("error", err))

			return nil, err
		}

		logger.Debug("Lost identity uniqueness race, re-evaluating", slog.Int("attempt", attempt))
		lastErr = err
	}

	return nil, domainerrors.ErrConflict.WrapMessage(lastErr.Error())
}

func validateCallback(input *usecase.CallbackInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("callback input is required")
	}
	if !input.Provider.IsExternal() {
		return domainerrors.ErrUnknownProvider.WithDetails(input.Provider.String())
	}
	if strings.TrimSpace(input.SubjectID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("provider subject id is required")
	}

	return nil
}

// linkToRequester handles a callback made by a signed-in identity.
func (srv *identityLinker) linkToRequester(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	identityRepo := repoFactory.IdentityRepo()

	requester, err := identityRepo.FindByID(ctx, *input.RequestingIdentityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requesting identity")
	}

	owner, err := identityRepo.FindByProviderSubject(ctx, input.Provider, input.SubjectID)
	switch {
	case err == nil && owner.ID == requester.ID:
		if err := srv.storeCredential(ctx, repoFactory, owner, input); err != nil {
			return nil, err
		}
		refreshed, err := identityRepo.FindByID(ctx, owner.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload identity")
		}

		return &usecase.CallbackOutput{Identity: refreshed, Outcome: usecase.OutcomeRelinked}, nil
	case err == nil:
		return nil, domainerrors.ErrProviderAlreadyLinkedElsewhere.WithDetails(input.Provider.String())
	case !errors.Is(err, repository.ErrIdentityNotFound):
		return nil, errors.Wrap(err, "failed to find provider link")
	}

	if existing := requester.Link(input.Provider); existing != nil {
		return nil, domainerrors.ErrConflict.WithDetails("identity is already linked to another " + input.Provider.String() + " account")
	}

	requester.AttachLink(&entity.ProviderLink{
		Kind:       input.Provider,
		SubjectID:  input.SubjectID,
		Profile:    input.Profile,
		Credential: input.Credential.Clone(),
		LinkedAt:   srv.now(),
	})
	requester.Profile.FillMissing(input.Profile)

	if err := identityRepo.Save(ctx, requester); err != nil {
		return nil, errors.Wrap(err, "failed to attach provider link")
	}

	return &usecase.CallbackOutput{Identity: requester, Outcome: usecase.OutcomeLinked}, nil
}

// resolveLogin handles a callback without a signed-in identity.
func (srv *identityLinker) resolveLogin(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	identityRepo := repoFactory.IdentityRepo()

	owner, err := identityRepo.FindByProviderSubject(ctx, input.Provider, input.SubjectID)
	if err == nil {
		return srv.login(ctx, repoFactory, owner, input)
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to find provider link")
	}

	// Never merge into an account that merely shares the email. Its owner has
	// to sign in and link the provider explicitly.
	if input.Profile.Email != "" {
		_, err := identityRepo.FindByEmail(ctx, input.Profile.Email)
		if err == nil {
			return nil, domainerrors.ErrEmailCollision.WithDetails(input.Provider.String())
		}
		if !errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to find identity by email")
		}
	}

	now := srv.now()
	identity := entity.NewIdentity(input.Profile.Email, now)
	identity.Profile = input.Profile
	identity.AttachLink(&entity.ProviderLink{
		Kind:       input.Provider,
		SubjectID:  input.SubjectID,
		Profile:    input.Profile,
		Credential: input.Credential.Clone(),
		LinkedAt:   now,
	})

	if err := identityRepo.CreateUnique(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	return &usecase.CallbackOutput{Identity: identity, Outcome: usecase.OutcomeCreated}, nil
}

func (srv *identityLinker) login(ctx context.Context, repoFactory repository.RepositoryFactory, owner *entity.Identity, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	if err := srv.storeCredential(ctx, repoFactory, owner, input); err != nil {
		return nil, err
	}

	identity, err := repoFactory.IdentityRepo().FindByID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload identity")
	}

	return &usecase.CallbackOutput{Identity: identity, Outcome: usecase.OutcomeLogin}, nil
}

// storeCredential records the credential from a fresh provider login and
// fills profile fields that are still unset.
func (srv *identityLinker) storeCredential(ctx context.Context, repoFactory repository.RepositoryFactory, owner *entity.Identity, input *usecase.CallbackInput) error {
	err := repoFactory.CredentialRepo().ReplaceCredential(ctx, owner.ID, input.Provider, input.Credential)
	if err != nil && !errors.Is(err, repository.ErrStaleCredential) {
		return errors.Wrap(err, "failed to store provider credential")
	}

	changed := owner.Profile.FillMissing(input.Profile)
	if link := owner.Link(input.Provider); link != nil && link.Profile.FillMissing(input.Profile) {
		changed = true
	}
	if !changed {
		return nil
	}

	if err := repoFactory.IdentityRepo().Save(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
