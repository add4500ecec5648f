package usecase

import (
	"context"
	"time"

	"passage/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a local account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the profile fields to change. Nil fields are left alone.
type UpdateProfileInput struct {
	Email    *string
	Name     *string
	Picture  *string
	Gender   *string
	Location *string
}

// ChangePasswordInput sets or replaces the local password.
type ChangePasswordInput struct {
	Password string
	Confirm  string
}

// ResetPasswordInput completes the password reset flow.
type ResetPasswordInput struct {
	Token    string
	Password string
	Confirm  string
}

// --- Output DTOs ---

// AuthOutput is returned by every flow that starts a session.
type AuthOutput struct {
	SessionToken string
	ExpiresAt    time.Time
	Identity     *entity.Identity
}

// AccountUsecase covers the local account flows.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetIdentity(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, identityID uuid.UUID, input *UpdateProfileInput) (*entity.Identity, error)
	ChangePassword(ctx context.Context, identityID uuid.UUID, input *ChangePasswordInput) error
	UnlinkProvider(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error

	RequestEmailVerification(ctx context.Context, identityID uuid.UUID) error
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
