package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verificationTokenBytes      = 32
	defaultPasswordResetTTL     = time.Hour
	defaultEmailVerificationTTL = 24 * time.Hour
)

type verificationService struct {
	txManager repository.TransactionManager
	ttl       map[entity.TokenPurpose]time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationTokenService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService creates the single-use token service.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationTokenService {
	return newVerificationService(params, time.Now)
}

func newVerificationService(params VerificationServiceParams, now func() time.Time) *verificationService {
	ttl := map[entity.TokenPurpose]time.Duration{
		entity.PurposePasswordReset: defaultPasswordResetTTL,
		entity.PurposeEmailVerify:   defaultEmailVerificationTTL,
	}
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.PasswordResetTTL > 0 {
			ttl[entity.PurposePasswordReset] = params.Config.Auth.PasswordResetTTL
		}
		if params.Config.Auth.EmailVerificationTTL > 0 {
			ttl[entity.PurposeEmailVerify] = params.Config.Auth.EmailVerificationTTL
		}
	}

	return &verificationService{
		txManager: params.TxManager,
		ttl:       ttl,
		now:       now,
		logger:    params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *verificationService) Issue(ctx context.Context, identityID uuid.UUID, purpose entity.TokenPurpose) (*usecase.IssuedToken, error) {
	ttl, ok := srv.ttl[purpose]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown token purpose: " + string(purpose))
	}

	value, err := generateTokenValue()
	if err != nil {
		return nil, err
	}

	now := srv.now()
	token := &entity.VerificationToken{
		ID:         uuid.New(),
		IdentityID: identityID,
		Purpose:    purpose,
		TokenHash:  hashTokenValue(value),
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VerificationTokenRepo().Replace(ctx, token)
	})
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store verification token")
	}

	srv.log(ctx).Info("Verification token issued",
		slog.String("identityID", identityID.String()),
		slog.String("purpose", string(purpose)),
		slog.Time("expiresAt", token.ExpiresAt),
	)

	return &usecase.IssuedToken{Value: value, ExpiresAt: token.ExpiresAt}, nil
}

func (srv *verificationService) Validate(ctx context.Context, value string, purpose entity.TokenPurpose) (uuid.UUID, error) {
	var identityID uuid.UUID
	err := srv.withLiveToken(ctx, value, purpose, func(_ repository.RepositoryFactory, token *entity.VerificationToken) error {
		identityID = token.IdentityID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return identityID, nil
}

func (srv *verificationService) Consume(ctx context.Context, value string, purpose entity.TokenPurpose, apply usecase.ConsumeFunc) error {
	err := srv.withLiveToken(ctx, value, purpose, func(repoFactory repository.RepositoryFactory, token *entity.VerificationToken) error {
		deleted, err := repoFactory.VerificationTokenRepo().DeleteByHash(ctx, purpose, token.TokenHash)
		if err != nil {
			return errors.Wrap(err, "failed to clear verification token")
		}
		if !deleted {
			return domainerrors.ErrTokenInvalid
		}

		identity, err := repoFactory.IdentityRepo().FindByID(ctx, token.IdentityID)
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to load token owner")
		}

		if apply == nil {
			return nil
		}

		return apply(ctx, repoFactory, identity)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Verification token consumed", slog.String("purpose", string(purpose)))

	return nil
}

// withLiveToken runs fn in a transaction with the unexpired token matching
// value. An expired token is deleted and the transaction still commits, so
// the next lookup reports it as invalid.
func (srv *verificationService) withLiveToken(
	ctx context.Context,
	value string,
	purpose entity.TokenPurpose,
	fn func(repoFactory repository.RepositoryFactory, token *entity.VerificationToken) error,
) error {
	if value == "" {
		return domainerrors.ErrTokenInvalid
	}
	hash := hashTokenValue(value)

	expired := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.VerificationTokenRepo()

		token, err := tokenRepo.FindByHash(ctx, purpose, hash)
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find verification token")
		}

		if token.IsExpired(srv.now()) {
			expired = true
			if _, err := tokenRepo.DeleteByHash(ctx, purpose, hash); err != nil {
				return errors.Wrap(err, "failed to clear expired verification token")
			}

			return nil
		}

		return fn(repoFactory, token)
	})
	if err != nil {
		return err
	}
	if expired {
		srv.log(ctx).Info("Rejected expired verification token", slog.String("purpose", string(purpose)))

		return domainerrors.ErrTokenExpired
	}

	return nil
}

func generateTokenValue() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate verification token")
	}

	return hex.EncodeToString(buf), nil
}

func hashTokenValue(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}
