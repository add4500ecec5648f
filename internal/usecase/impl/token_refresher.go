package impl

import (
	"context"
	"log/slog"
	"time"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/lifecycle"
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultRefreshSkew = 60 * time.Second

type tokenRefresher struct {
	vault    usecase.TokenVault
	registry service.ProviderRegistry
	skew     time.Duration
	timeout  time.Duration
	group    singleflight.Group
	now      func() time.Time
	logger   *slog.Logger
}

// TokenRefresherParams holds dependencies for TokenRefresher, injected by Fx.
type TokenRefresherParams struct {
	fx.In

	Vault    usecase.TokenVault
	Registry service.ProviderRegistry
	Config   *config.Config
	Logger   *slog.Logger
}

// NewTokenRefresher creates a refresher that collapses concurrent refreshes
// of the same link into one provider call.
func NewTokenRefresher(params TokenRefresherParams) usecase.TokenRefresher {
	return newTokenRefresher(params, time.Now)
}

func newTokenRefresher(params TokenRefresherParams, now func() time.Time) *tokenRefresher {
	skew := defaultRefreshSkew
	timeout := lifecycle.DefaultTimeout
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.RefreshSkew > 0 {
			skew = params.Config.Auth.RefreshSkew
		}
		if params.Config.Auth.ProviderTimeout > 0 {
			timeout = params.Config.Auth.ProviderTimeout
		}
	}

	return &tokenRefresher{
		vault:    params.Vault,
		registry: params.Registry,
		skew:     skew,
		timeout:  timeout,
		now:      now,
		logger:   params.Logger,
	}
}

func (r *tokenRefresher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *tokenRefresher) EnsureFresh(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.AccessCredential, error) {
	link, err := r.vault.Link(ctx, identityID, kind)
	if err != nil {
		return nil, err
	}
	if link.ReauthRequired {
		return nil, domainerrors.NewReauthRequiredError(kind.String())
	}
	if !link.Credential.IsStale(r.now(), r.skew) {
		credential := link.Credential.Clone()

		return &credential, nil
	}

	// The flight outlives any single caller, so it runs on a detached context
	// bounded by the provider timeout. Each caller still honours its own ctx.
	key := identityID.String() + ":" + kind.String()
	flightCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (any, error) {
		return r.refresh(flightCtx, identityID, kind)
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for provider refresh")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		credential := res.Val.(entity.AccessCredential).Clone()

		return &credential, nil
	}
}

func (r *tokenRefresher) refresh(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (entity.AccessCredential, error) {
	logger := r.log(ctx).With(slog.String("identityID", identityID.String()), slog.String("provider", kind.String()))

	// Another flight may have finished between the caller's read and this one.
	link, err := r.vault.Link(ctx, identityID, kind)
	if err != nil {
		return entity.AccessCredential{}, err
	}
	if link.ReauthRequired {
		return entity.AccessCredential{}, domainerrors.NewReauthRequiredError(kind.String())
	}
	now := r.now()
	if !link.Credential.IsStale(now, r.skew) {
		return link.Credential, nil
	}

	if !link.Credential.CanRefresh(now) {
		logger.Info("Refresh token missing or expired")

		return entity.AccessCredential{}, r.requireReauth(ctx, identityID, kind)
	}

	client, err := r.registry.Client(kind)
	if err != nil {
		return entity.AccessCredential{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fresh, err := client.Refresh(callCtx, link.Credential.RefreshToken)
	if errors.Is(err, domainerrors.ErrReauthRequired) {
		logger.Info("Provider rejected refresh token", slog.Any("error", err))

		return entity.AccessCredential{}, r.requireReauth(ctx, identityID, kind)
	}
	if err != nil {
		logger.Warn("Provider refresh failed", slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrTransientProvider) {
			return entity.AccessCredential{}, err
		}

		return entity.AccessCredential{}, domainerrors.ErrTransientProvider.WrapMessage(err.Error())
	}

	carryOverRefreshToken(&fresh, link.Credential)

	if err := r.vault.Update(ctx, identityID, kind, fresh); err != nil {
		if !errors.Is(err, domainerrors.ErrConflict) {
			return entity.AccessCredential{}, err
		}
		// A newer credential landed while we were refreshing; it wins.
		stored, getErr := r.vault.Get(ctx, identityID, kind)
		if getErr != nil {
			return entity.AccessCredential{}, getErr
		}

		return *stored, nil
	}

	logger.Debug("Provider credential refreshed")

	return fresh, nil
}

// carryOverRefreshToken keeps the stored refresh token and its expiry when the
// provider did not rotate it. Clients may echo the old token back without the
// expiry, which the provider only reports when it issues a new one.
func carryOverRefreshToken(fresh *entity.AccessCredential, prev entity.AccessCredential) {
	if fresh.RefreshToken != "" && fresh.RefreshToken != prev.RefreshToken {
		return
	}
	fresh.RefreshToken = prev.RefreshToken
	if fresh.RefreshExpiresAt == nil && prev.RefreshExpiresAt != nil {
		expiry := *prev.RefreshExpiresAt
		fresh.RefreshExpiresAt = &expiry
	}
}

func (r *tokenRefresher) requireReauth(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) error {
	if err := r.vault.MarkReauthRequired(ctx, identityID, kind); err != nil {
		return err
	}

	return domainerrors.NewReauthRequiredError(kind.String())
}
