package impl

import (
	"context"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionAuthorizer struct {
	identityRepo repository.IdentityRepository
	tokenService service.SessionTokenService
	registry     service.ProviderRegistry
	refresher    usecase.TokenRefresher
	logger       *slog.Logger
}

// SessionAuthorizerParams holds dependencies for SessionAuthorizer, injected by Fx.
type SessionAuthorizerParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	TokenService service.SessionTokenService
	Registry     service.ProviderRegistry
	Refresher    usecase.TokenRefresher
	Logger       *slog.Logger
}

// NewSessionAuthorizer creates the gate used by protected routes.
func NewSessionAuthorizer(params SessionAuthorizerParams) usecase.SessionAuthorizer {
	return &sessionAuthorizer{
		identityRepo: params.IdentityRepo,
		tokenService: params.TokenService,
		registry:     params.Registry,
		refresher:    params.Refresher,
		logger:       params.Logger,
	}
}

func (srv *sessionAuthorizer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionAuthorizer) ResolveIdentity(ctx context.Context, sessionToken string) (*entity.Identity, error) {
	if sessionToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.Validate(sessionToken)
	if err != nil {
		return nil, err
	}

	identity, err := srv.identityRepo.FindByID(ctx, claims.IdentityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		srv.log(ctx).Info("Session refers to a deleted identity", slog.String("identityID", claims.IdentityID.String()))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session identity")
	}

	return identity, nil
}

func (srv *sessionAuthorizer) AuthorizeProvider(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error) {
	if _, err := srv.registry.Client(kind); err != nil {
		return nil, err
	}

	credential, err := srv.refresher.EnsureFresh(ctx, identityID, kind)
	if err == nil {
		return credential, nil
	}

	// Without a link there is nothing to refresh; the user has to go through
	// the provider's authorize flow either way.
	if errors.Is(err, domainerrors.ErrProviderNotLinked) {
		return nil, domainerrors.NewReauthRequiredError(kind.String())
	}

	srv.log(ctx).Info("Provider authorization failed",
		slog.String("identityID", identityID.String()),
		slog.String("provider", kind.String()),
		slog.Any("error", err),
	)

	return nil, err
}
