// Package impl contains the implementation of the application's business logic.
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
	"passage/internal/domain/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.SessionTokenService
	verification usecase.VerificationTokenService
	mailer       service.Mailer
	now          func() time.Time
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.SessionTokenService
	Verification usecase.VerificationTokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verification: params.Verification,
		mailer:       params.Mailer,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a local identity, starts a session and sends the first
// verification email.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting sign up", slog.String("email", email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	identity := entity.NewIdentity(email, srv.now())
	identity.PasswordHash = passwordHash
	identity.Profile.Name = strings.TrimSpace(input.Name)
	identity.Profile.Email = email

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		_, err := identityRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrIdentityNotFound) {
			return errors.Wrap(err, "failed to find identity by email")
		}

		if err := identityRepo.CreateUnique(ctx, identity); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create identity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output, err := srv.startSession(identity)
	if err != nil {
		return nil, err
	}

	srv.sendVerification(ctx, identity)

	srv.log(ctx).Debug("Sign up completed", slog.String("identityID", identity.ID.String()))

	return output, nil
}

// Login authenticates with email and password.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	identity, err := srv.identityRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	if !identity.HasPassword() {
		return nil, domainerrors.ErrPasswordNotSet
	}

	match, err := srv.hasher.Verify(identity.PasswordHash, input.Password)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable", slog.String("identityID", identity.ID.String()), slog.Any("error", err))

		return nil, err
	}
	if !match {
		srv.log(ctx).Info("Password mismatch", slog.String("identityID", identity.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.startSession(identity)
}

func (srv *accountService) GetIdentity(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}

// UpdateProfile changes profile fields. A new email address has to be
// verified again.
func (srv *accountService) UpdateProfile(ctx context.Context, identityID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Identity, error) {
	var updated *entity.Identity
	emailChanged := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := findIdentity(ctx, identityRepo, identityID)
		if err != nil {
			return err
		}

		if input.Email != nil {
			email := normalizeEmail(*input.Email)
			if email == "" {
				return domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
			}
			if email != identity.Email {
				if _, err := identityRepo.FindByEmail(ctx, email); err == nil {
					return domainerrors.ErrEmailAlreadyRegistered
				} else if !errors.Is(err, repository.ErrIdentityNotFound) {
					return errors.Wrap(err, "failed to find identity by email")
				}
				identity.Email = email
				identity.Profile.Email = email
				identity.EmailVerified = false
				emailChanged = true
			}
		}
		applyProfileUpdate(&identity.Profile, input)

		if err := identityRepo.Save(ctx, identity); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to save profile")
		}
		updated = identity

		return nil
	})
	if err != nil {
		return nil, err
	}

	if emailChanged {
		srv.sendVerification(ctx, updated)
	}

	return updated, nil
}

func applyProfileUpdate(profile *entity.ProfileFields, input *usecase.UpdateProfileInput) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}

	set(&profile.Name, input.Name)
	set(&profile.Picture, input.Picture)
	set(&profile.Gender, input.Gender)
	set(&profile.Location, input.Location)
}

// ChangePassword sets or replaces the local password of a signed-in identity.
func (srv *accountService) ChangePassword(ctx context.Context, identityID uuid.UUID, input *usecase.ChangePasswordInput) error {
	passwordHash, err := srv.prepareNewPassword(input.Password, input.Confirm)
	if err != nil {
		return err
	}

	var email string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := findIdentity(ctx, identityRepo, identityID)
		if err != nil {
			return err
		}
		identity.PasswordHash = passwordHash
		email = identity.Email

		return errors.Wrap(identityRepo.Save(ctx, identity), "failed to save password")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("identityID", identityID.String()))
	srv.notifyPasswordChanged(ctx, email)

	return nil
}

// UnlinkProvider removes a provider link unless it is the last way to sign in.
func (srv *accountService) UnlinkProvider(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.Identity, error) {
	if !kind.IsExternal() {
		return nil, domainerrors.ErrUnknownProvider.WithDetails(kind.String())
	}

	var updated *entity.Identity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := findIdentity(ctx, identityRepo, identityID)
		if err != nil {
			return err
		}
		if identity.Link(kind) == nil {
			return domainerrors.ErrProviderNotLinked.WithDetails(kind.String())
		}
		if !identity.CanRemoveLink(kind) {
			return domainerrors.ErrLastAuthMethod
		}

		delete(identity.Links, kind)
		if err := identityRepo.Save(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to remove provider link")
		}
		updated = identity

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Provider unlinked", slog.String("identityID", identityID.String()), slog.String("provider", kind.String()))

	return updated, nil
}

// DeleteIdentity removes the identity with its links and pending tokens.
func (srv *accountService) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VerificationTokenRepo().DeleteByIdentity(ctx, identityID); err != nil {
			return errors.Wrap(err, "failed to delete verification tokens")
		}

		err := repoFactory.IdentityRepo().Delete(ctx, identityID)
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to delete identity")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Identity deleted", slog.String("identityID", identityID.String()))

	return nil
}

func (srv *accountService) RequestEmailVerification(ctx context.Context, identityID uuid.UUID) error {
	identity, err := srv.GetIdentity(ctx, identityID)
	if err != nil {
		return err
	}
	if identity.Email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("identity has no email address")
	}
	if identity.EmailVerified {
		return nil
	}

	issued, err := srv.verification.Issue(ctx, identity.ID, entity.PurposeEmailVerify)
	if err != nil {
		return err
	}
	if err := srv.mailer.SendVerificationEmail(ctx, identity.Email, issued.Value); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.String("identityID", identity.ID.String()), slog.Any("error", err))
	}

	return nil
}

func (srv *accountService) VerifyEmail(ctx context.Context, token string) error {
	return srv.verification.Consume(ctx, token, entity.PurposeEmailVerify,
		func(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) error {
			identity.EmailVerified = true

			return errors.Wrap(repoFactory.IdentityRepo().Save(ctx, identity), "failed to mark email verified")
		},
	)
}

// RequestPasswordReset mails a reset link. Unknown addresses are accepted
// silently so the endpoint cannot be used to probe for accounts.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	identity, err := srv.identityRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find identity by email")
	}

	issued, err := srv.verification.Issue(ctx, identity.ID, entity.PurposePasswordReset)
	if err != nil {
		return err
	}
	if err := srv.mailer.SendPasswordResetEmail(ctx, identity.Email, issued.Value); err != nil {
		srv.log(ctx).Warn("Failed to send password reset email", slog.String("identityID", identity.ID.String()), slog.Any("error", err))
	}

	return nil
}

// ResetPassword replaces the password using a reset token. The token is
// cleared in the same transaction as the password change.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	passwordHash, err := srv.prepareNewPassword(input.Password, input.Confirm)
	if err != nil {
		return err
	}

	var email string
	err = srv.verification.Consume(ctx, input.Token, entity.PurposePasswordReset,
		func(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) error {
			identity.PasswordHash = passwordHash
			email = identity.Email

			return errors.Wrap(repoFactory.IdentityRepo().Save(ctx, identity), "failed to save password")
		},
	)
	if err != nil {
		return err
	}

	srv.notifyPasswordChanged(ctx, email)

	return nil
}

func (srv *accountService) prepareNewPassword(password, confirm string) (string, error) {
	if password != confirm {
		return "", domainerrors.ErrValidationFailed.WithDetails("passwords do not match")
	}
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	return srv.hasher.Hash(password)
}

func (srv *accountService) startSession(identity *entity.Identity) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{SessionToken: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// sendVerification issues an email-verify token and mails it. Failures are
// logged; the caller's committed changes stand.
func (srv *accountService) sendVerification(ctx context.Context, identity *entity.Identity) {
	issued, err := srv.verification.Issue(ctx, identity.ID, entity.PurposeEmailVerify)
	if err != nil {
		srv.log(ctx).Warn("Failed to issue verification token", slog.String("identityID", identity.ID.String()), slog.Any("error", err))

		return
	}
	if err := srv.mailer.SendVerificationEmail(ctx, identity.Email, issued.Value); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.String("identityID", identity.ID.String()), slog.Any("error", err))
	}
}

func (srv *accountService) notifyPasswordChanged(ctx context.Context, email string) {
	if email == "" {
		return
	}
	if err := srv.mailer.SendPasswordChangedEmail(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to send password changed email", slog.Any("error", err))
	}
}

func findIdentity(ctx context.Context, identityRepo repository.IdentityRepository, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := identityRepo.FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}
