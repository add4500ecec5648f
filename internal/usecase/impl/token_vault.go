package impl

import (
	"context"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tokenVault struct {
	credentialRepo repository.CredentialRepository
	logger         *slog.Logger
}

// TokenVaultParams holds dependencies for TokenVault, injected by Fx.
type TokenVaultParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Logger         *slog.Logger
}

// NewTokenVault creates the credential vault on top of the credential repository.
func NewTokenVault(params TokenVaultParams) usecase.TokenVault {
	return &tokenVault{
		credentialRepo: params.CredentialRepo,
		logger:         params.Logger,
	}
}

func (v *tokenVault) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

func (v *tokenVault) Link(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error) {
	link, err := v.credentialRepo.FindLink(ctx, identityID, kind)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return nil, domainerrors.ErrProviderNotLinked.WithDetails(kind.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find provider link")
	}

	return link, nil
}

func (v *tokenVault) Get(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error) {
	link, err := v.Link(ctx, identityID, kind)
	if err != nil {
		return nil, err
	}

	credential := link.Credential.Clone()

	return &credential, nil
}

func (v *tokenVault) Update(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind, credential entity.AccessCredential) error {
	err := v.credentialRepo.ReplaceCredential(ctx, identityID, kind, credential)
	switch {
	case err == nil:
		v.log(ctx).Debug("Provider credential replaced", slog.String("identityID", identityID.String()), slog.String("provider", kind.String()))

		return nil
	case errors.Is(err, repository.ErrLinkNotFound):
		return domainerrors.ErrProviderNotLinked.WithDetails(kind.String())
	case errors.Is(err, repository.ErrStaleCredential):
		return domainerrors.ErrConflict.WrapMessage("stored credential is newer")
	default:
		return errors.Wrap(err, "failed to replace provider credential")
	}
}

func (v *tokenVault) MarkReauthRequired(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) error {
	err := v.credentialRepo.MarkReauthRequired(ctx, identityID, kind)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return domainerrors.ErrProviderNotLinked.WithDetails(kind.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to flag provider link")
	}

	v.log(ctx).Warn("Provider link needs a fresh login", slog.String("identityID", identityID.String()), slog.String("provider", kind.String()))

	return nil
}
