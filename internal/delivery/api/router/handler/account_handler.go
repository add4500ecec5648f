package handler

import (
	"log/slog"
	"net/http"

	"passage/internal/delivery/api/middleware"
	"passage/internal/delivery/api/response"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the local account endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignUpRequest represents the request body for a local sign up
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"max=100"`
}

// LoginRequest represents the request body for a local login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries only the fields the caller wants to change
type UpdateProfileRequest struct {
	Email    *string `json:"email" validate:"omitnil,email"`
	Name     *string `json:"name" validate:"omitnil,max=100"`
	Picture  *string `json:"picture" validate:"omitnil,max=2048"`
	Gender   *string `json:"gender" validate:"omitnil,max=32"`
	Location *string `json:"location" validate:"omitnil,max=100"`
}

// ChangePasswordRequest represents the request body for setting a password
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required,eqfield=Password"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required,eqfield=Password"`
}

// VerifyEmailRequest carries the token from the verification mail, either
// as the link's query string or in a JSON body.
type VerifyEmailRequest struct {
	Token string `json:"token" query:"token" validate:"required"`
}

// SignUp handles local account creation
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSessionView(out))
}

// Login handles local email and password login
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionView(out))
}

// GetMe returns the signed-in identity
func (h *AccountHandler) GetMe(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	identity, err := h.accountUC.GetIdentity(c.Request().Context(), identityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIdentityView(identity))
}

// UpdateMe changes profile fields of the signed-in identity
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	identity, err := h.accountUC.UpdateProfile(c.Request().Context(), identityID, &usecase.UpdateProfileInput{
		Email:    req.Email,
		Name:     req.Name,
		Picture:  req.Picture,
		Gender:   req.Gender,
		Location: req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newIdentityView(identity))
}

// DeleteMe removes the signed-in identity and everything attached to it
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	if err := h.accountUC.DeleteIdentity(c.Request().Context(), identityID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ChangePassword sets or replaces the local password
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), identityID, &usecase.ChangePasswordInput{
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UnlinkProvider detaches a provider from the signed-in identity
func (h *AccountHandler) UnlinkProvider(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	kind := entity.ProviderKind(c.Param("provider"))
	identity, err := h.accountUC.UnlinkProvider(c.Request().Context(), identityID, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Provider unlinked",
		slog.String("identity_id", identityID.String()),
		slog.String("provider", kind.String()),
	)

	return response.Success(c, http.StatusOK, newIdentityView(identity))
}

// RequestEmailVerification mails a verification link to the signed-in identity
func (h *AccountHandler) RequestEmailVerification(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	if err := h.accountUC.RequestEmailVerification(c.Request().Context(), identityID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"sent": true})
}

// VerifyEmail consumes an email verification token
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.VerifyEmail(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"email_verified": true})
}

// ForgotPassword starts the password reset flow. The response is the same
// whether or not the email belongs to an account.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"sent": true})
}

// ResetPassword completes the password reset flow
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.accountUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:    req.Token,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
