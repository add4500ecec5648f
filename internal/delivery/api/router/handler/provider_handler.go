package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"passage/internal/delivery/api/middleware"
	"passage/internal/delivery/api/response"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderAuthUC usecase.ProviderAuthUsecase
	Logger         *slog.Logger
}

// ProviderHandler serves the provider authorize round trip and the
// provider-scoped endpoints.
type ProviderHandler struct {
	providerAuthUC usecase.ProviderAuthUsecase
	logger         *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerAuthUC: params.ProviderAuthUC,
		logger:         params.Logger,
	}
}

// Authorize sends the browser to the provider. A signed-in caller links the
// provider to its identity instead of logging in. Clients asking for JSON
// get the URL in the body rather than a redirect.
func (h *ProviderHandler) Authorize(c echo.Context) error {
	kind := entity.ProviderKind(c.Param("provider"))

	var requesting *uuid.UUID
	if identityID, ok := middleware.GetIdentityID(c); ok {
		requesting = &identityID
	}

	authorizeURL, err := h.providerAuthUC.BeginAuthorization(c.Request().Context(), kind, requesting)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if wantsJSON(c) {
		return response.Success(c, http.StatusOK, map[string]string{"authorize_url": authorizeURL})
	}

	return c.Redirect(http.StatusFound, authorizeURL)
}

// Callback completes the provider round trip and starts a session.
func (h *ProviderHandler) Callback(c echo.Context) error {
	kind := entity.ProviderKind(c.Param("provider"))

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.logger.Warn("Provider declined authorization",
			slog.String("provider", kind.String()),
			slog.String("error", providerErr),
		)

		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("authorization was declined: "+providerErr))
	}

	out, err := h.providerAuthUC.CompleteAuthorization(c.Request().Context(), &usecase.CompleteAuthorizationInput{
		Provider: kind,
		State:    c.QueryParam("state"),
		Code:     c.QueryParam("code"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := newSessionView(&out.AuthOutput)
	view.Outcome = string(out.Outcome)

	status := http.StatusOK
	if out.Outcome == usecase.OutcomeCreated {
		status = http.StatusCreated
	}

	return response.Success(c, status, view)
}

// GetProviderProfile reads the live provider profile with the stored
// credential. When the user must authorize the provider again the caller
// is redirected to the authorize endpoint.
func (h *ProviderHandler) GetProviderProfile(c echo.Context) error {
	identityID, ok := middleware.GetIdentityID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	kind := entity.ProviderKind(c.Param("provider"))
	profile, err := h.providerAuthUC.FetchProviderProfile(c.Request().Context(), identityID, kind)
	if err != nil {
		var reauth *domainerrors.ReauthRequiredError
		if errors.As(err, &reauth) && !wantsJSON(c) {
			return c.Redirect(http.StatusFound, reauth.AuthorizePath)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileView(*profile))
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
