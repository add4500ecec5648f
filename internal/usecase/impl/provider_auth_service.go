package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerAuthService struct {
	registry     service.ProviderRegistry
	stateStore   service.OAuthStateStore
	linker       usecase.IdentityLinker
	authorizer   usecase.SessionAuthorizer
	tokenService service.SessionTokenService
	now          func() time.Time
	logger       *slog.Logger
}

// ProviderAuthServiceParams holds dependencies for ProviderAuthService, injected by Fx.
type ProviderAuthServiceParams struct {
	fx.In

	Registry     service.ProviderRegistry
	StateStore   service.OAuthStateStore
	Linker       usecase.IdentityLinker
	Authorizer   usecase.SessionAuthorizer
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewProviderAuthService creates the provider login and linking flow.
func NewProviderAuthService(params ProviderAuthServiceParams) usecase.ProviderAuthUsecase {
	return &providerAuthService{
		registry:     params.Registry,
		stateStore:   params.StateStore,
		linker:       params.Linker,
		authorizer:   params.Authorizer,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *providerAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *providerAuthService) BeginAuthorization(ctx context.Context, kind entity.ProviderKind, requesting *uuid.UUID) (string, error) {
	client, err := srv.registry.Client(kind)
	if err != nil {
		return "", err
	}

	state, err := srv.stateStore.Issue(ctx, service.OAuthState{
		Provider:           kind,
		RequestingIdentity: requesting,
		CreatedAt:          srv.now(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	return client.AuthorizeURL(state), nil
}

func (srv *providerAuthService) CompleteAuthorization(ctx context.Context, input *usecase.CompleteAuthorizationInput) (*usecase.ProviderLoginOutput, error) {
	client, err := srv.registry.Client(input.Provider)
	if err != nil {
		return nil, err
	}

	state, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		return nil, err
	}
	if state.Provider != input.Provider {
		return nil, domainerrors.ErrOAuthStateInvalid.WithDetails("state was issued for another provider")
	}
	if input.Code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authorization code is required")
	}

	grant, err := client.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Provider code exchange failed", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, err
	}

	result, err := srv.linker.HandleCallback(ctx, &usecase.CallbackInput{
		RequestingIdentityID: state.RequestingIdentity,
		Provider:             input.Provider,
		SubjectID:            grant.SubjectID,
		Profile:              grant.Profile,
		Credential:           grant.Credential,
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := srv.tokenService.Issue(result.Identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.ProviderLoginOutput{
		AuthOutput: usecase.AuthOutput{
			SessionToken: token,
			ExpiresAt:    expiresAt,
			Identity:     result.Identity,
		},
		Outcome: result.Outcome,
	}, nil
}

func (srv *providerAuthService) FetchProviderProfile(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProfileFields, error) {
	credential, err := srv.authorizer.AuthorizeProvider(ctx, identityID, kind)
	if err != nil {
		return nil, err
	}

	client, err := srv.registry.Client(kind)
	if err != nil {
		return nil, err
	}

	_, profile, err := client.FetchProfile(ctx, credential.AccessToken)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
