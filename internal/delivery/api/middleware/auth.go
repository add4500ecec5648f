package middleware

import (
	"strings"

	"passage/internal/delivery/api/response"
	deliverycontext "passage/internal/delivery/context"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Authorizer usecase.SessionAuthorizer
}

// AuthMiddleware resolves the session token on incoming requests.
type AuthMiddleware struct {
	authorizer usecase.SessionAuthorizer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authorizer: params.Authorizer}
}

// Authenticate rejects requests without a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		if err := m.resolve(c, token); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// Identify resolves the session when one is presented and lets anonymous
// requests through. A presented but invalid token is still rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		if err := m.resolve(c, token); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, token string) error {
	identity, err := m.authorizer.ResolveIdentity(c.Request().Context(), token)
	if err != nil {
		return err
	}

	deliverycontext.SetIdentityID(c, identity.ID)

	return nil
}

// GetIdentityID returns the identity resolved by Authenticate or Identify.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetIdentityID(c)
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
