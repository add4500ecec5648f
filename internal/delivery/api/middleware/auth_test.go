package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	mockUsecase "passage/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, called, c
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := entity.NewIdentity("ada@example.com", time.Now())

	authorizer := mockUsecase.NewMockSessionAuthorizer(t)
	authorizer.EXPECT().ResolveIdentity(mock.Anything, "good-token").Return(identity, nil).Once()

	m := NewAuthMiddleware(AuthMiddlewareParams{Authorizer: authorizer})
	rec, called, c := runMiddleware(t, m.Authenticate, "Bearer good-token")

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	id, ok := deliverycontext.GetIdentityID(c)
	assert.True(t, ok)
	assert.Equal(t, identity.ID, id)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		resolveErr    error
	}{
		{name: "missing header"},
		{name: "not a bearer token", authorization: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", authorization: "Bearer   "},
		{name: "expired session", authorization: "Bearer stale", resolveErr: domainerrors.ErrUnauthorized.WithDetails("token expired")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := mockUsecase.NewMockSessionAuthorizer(t)
			if tt.resolveErr != nil {
				authorizer.EXPECT().ResolveIdentity(mock.Anything, "stale").Return(nil, tt.resolveErr).Once()
			}

			m := NewAuthMiddleware(AuthMiddlewareParams{Authorizer: authorizer})
			rec, called, _ := runMiddleware(t, m.Authenticate, tt.authorization)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotContains(t, rec.Body.String(), "token expired")
		})
	}
}

func TestAuthMiddleware_Identify(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{Authorizer: mockUsecase.NewMockSessionAuthorizer(t)})
		rec, called, c := runMiddleware(t, m.Identify, "")

		assert.True(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, ok := GetIdentityID(c)
		assert.False(t, ok)
	})

	t.Run("presented token is resolved", func(t *testing.T) {
		identity := entity.NewIdentity("", time.Now())
		authorizer := mockUsecase.NewMockSessionAuthorizer(t)
		authorizer.EXPECT().ResolveIdentity(mock.Anything, "good-token").Return(identity, nil).Once()

		m := NewAuthMiddleware(AuthMiddlewareParams{Authorizer: authorizer})
		_, called, c := runMiddleware(t, m.Identify, "Bearer good-token")

		assert.True(t, called)
		id, ok := GetIdentityID(c)
		assert.True(t, ok)
		assert.Equal(t, identity.ID, id)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		authorizer := mockUsecase.NewMockSessionAuthorizer(t)
		authorizer.EXPECT().ResolveIdentity(mock.Anything, "forged").Return(nil, domainerrors.ErrUnauthorized).Once()

		m := NewAuthMiddleware(AuthMiddlewareParams{Authorizer: authorizer})
		rec, called, _ := runMiddleware(t, m.Identify, "Bearer forged")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
