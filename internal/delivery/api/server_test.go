package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"passage/config"
	apimiddleware "passage/internal/delivery/api/middleware"
	"passage/internal/delivery/api/router"
	"passage/internal/delivery/api/router/handler"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	mockUsecase "passage/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo       *echo.Echo
	account    *mockUsecase.MockAccountUsecase
	provider   *mockUsecase.MockProviderAuthUsecase
	authorizer *mockUsecase.MockSessionAuthorizer
}

func newTestServer(t *testing.T) *testServer {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		account:    mockUsecase.NewMockAccountUsecase(t),
		provider:   mockUsecase.NewMockProviderAuthUsecase(t),
		authorizer: mockUsecase.NewMockSessionAuthorizer(t),
	}

	ts.echo = newEcho(cfg, logger, router.RouterParams{
		AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: ts.account, Logger: logger}),
		ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{ProviderAuthUC: ts.provider, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Authorizer: ts.authorizer}),
	})

	return ts
}

func (ts *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_ProtectedRoutesNeedSession(t *testing.T) {
	ts := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodDelete, "/api/v1/me"},
		{http.MethodDelete, "/api/v1/me/providers/google"},
		{http.MethodGet, "/api/v1/providers/google/profile"},
	} {
		rec := ts.do(route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestServer_SessionFlowsIntoHandlers(t *testing.T) {
	ts := newTestServer(t)
	identity := entity.NewIdentity("ada@example.com", time.Now())

	ts.authorizer.EXPECT().ResolveIdentity(mock.Anything, "session").Return(identity, nil).Once()
	ts.account.EXPECT().GetIdentity(mock.Anything, identity.ID).Return(identity, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/me", "", "session")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), identity.ID.String())
}

func TestServer_AuthorizeLinksWhenSignedIn(t *testing.T) {
	ts := newTestServer(t)
	identity := entity.NewIdentity("ada@example.com", time.Now())

	ts.authorizer.EXPECT().ResolveIdentity(mock.Anything, "session").Return(identity, nil).Once()
	ts.provider.EXPECT().
		BeginAuthorization(mock.Anything, entity.ProviderGoogle, mock.MatchedBy(func(requesting *uuid.UUID) bool {
			return requesting != nil && *requesting == identity.ID
		})).
		Return("https://accounts.example.com/auth?state=s1", nil).
		Once()

	rec := ts.do(http.MethodGet, "/auth/google", "", "session")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.example.com/auth?state=s1", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_ReauthRedirectsToAuthorize(t *testing.T) {
	ts := newTestServer(t)
	identity := entity.NewIdentity("ada@example.com", time.Now())

	ts.authorizer.EXPECT().ResolveIdentity(mock.Anything, "session").Return(identity, nil).Once()
	ts.provider.EXPECT().
		FetchProviderProfile(mock.Anything, identity.ID, entity.ProviderGoogle).
		Return(nil, domainerrors.NewReauthRequiredError("google")).
		Once()

	rec := ts.do(http.MethodGet, "/api/v1/providers/google/profile", "", "session")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/google", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	body := `{"email":"ada@example.com","password":"` + strings.Repeat("x", 2048) + `"}`
	rec := ts.do(http.MethodPost, "/auth/signup", body, "")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
