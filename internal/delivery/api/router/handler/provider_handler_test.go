package handler

import (
	"net/http"
	"testing"
	"time"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	mockUsecase "passage/internal/mocks/usecase"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProviderHandler(t *testing.T) (*ProviderHandler, *mockUsecase.MockProviderAuthUsecase) {
	uc := mockUsecase.NewMockProviderAuthUsecase(t)

	return NewProviderHandler(ProviderHandlerParams{ProviderAuthUC: uc, Logger: newTestLogger()}), uc
}

func withProvider(c echo.Context, provider string) echo.Context {
	c.SetParamNames("provider")
	c.SetParamValues(provider)

	return c
}

func TestProviderHandler_Authorize_Anonymous(t *testing.T) {
	h, uc := newProviderHandler(t)

	uc.EXPECT().
		BeginAuthorization(mock.Anything, entity.ProviderGoogle, (*uuid.UUID)(nil)).
		Return("https://accounts.example.com/auth?state=s1", nil).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/google", "", nil)

	require.NoError(t, h.Authorize(withProvider(c, "google")))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.example.com/auth?state=s1", rec.Header().Get(echo.HeaderLocation))
}

func TestProviderHandler_Authorize_SignedInLinksAndReturnsJSON(t *testing.T) {
	h, uc := newProviderHandler(t)
	id := uuid.New()

	uc.EXPECT().
		BeginAuthorization(mock.Anything, entity.ProviderFacebook, mock.MatchedBy(func(requesting *uuid.UUID) bool {
			return requesting != nil && *requesting == id
		})).
		Return("https://facebook.example.com/dialog?state=s2", nil).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/facebook", "", &id)
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	require.NoError(t, h.Authorize(withProvider(c, "facebook")))
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "https://facebook.example.com/dialog?state=s2", decodeSuccess[map[string]string](t, rec)["authorize_url"])
}

func TestProviderHandler_Authorize_UnknownProvider(t *testing.T) {
	h, uc := newProviderHandler(t)

	uc.EXPECT().
		BeginAuthorization(mock.Anything, entity.ProviderKind("myspace"), (*uuid.UUID)(nil)).
		Return("", domainerrors.ErrUnknownProvider.WithDetails("myspace")).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/myspace", "", nil)

	require.NoError(t, h.Authorize(withProvider(c, "myspace")))
	assertStatus(t, rec, http.StatusBadRequest)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "UNKNOWN_PROVIDER", errInfo.Code)
	assert.Equal(t, "myspace", errInfo.Details)
}

func TestProviderHandler_Callback(t *testing.T) {
	tests := []struct {
		name       string
		outcome    usecase.LinkOutcome
		wantStatus int
	}{
		{name: "new identity", outcome: usecase.OutcomeCreated, wantStatus: http.StatusCreated},
		{name: "existing link", outcome: usecase.OutcomeLogin, wantStatus: http.StatusOK},
		{name: "linked to session", outcome: usecase.OutcomeLinked, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newProviderHandler(t)
			identity := entity.NewIdentity("", time.Now())

			uc.EXPECT().
				CompleteAuthorization(mock.Anything, &usecase.CompleteAuthorizationInput{
					Provider: entity.ProviderGoogle,
					State:    "s1",
					Code:     "c1",
				}).
				Return(&usecase.ProviderLoginOutput{
					AuthOutput: usecase.AuthOutput{SessionToken: "session", ExpiresAt: time.Now().Add(time.Hour), Identity: identity},
					Outcome:    tt.outcome,
				}, nil).
				Once()

			c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/google/callback?state=s1&code=c1", "", nil)

			require.NoError(t, h.Callback(withProvider(c, "google")))
			assertStatus(t, rec, tt.wantStatus)

			view := decodeSuccess[SessionView](t, rec)
			assert.Equal(t, "session", view.SessionToken)
			assert.Equal(t, string(tt.outcome), view.Outcome)
			assert.Equal(t, identity.ID, view.Identity.ID)
		})
	}
}

func TestProviderHandler_Callback_ProviderDeclined(t *testing.T) {
	h, _ := newProviderHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/google/callback?error=access_denied&state=s1", "", nil)

	require.NoError(t, h.Callback(withProvider(c, "google")))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeError(t, rec).Details, "access_denied")
}

func TestProviderHandler_Callback_EmailCollision(t *testing.T) {
	h, uc := newProviderHandler(t)

	uc.EXPECT().
		CompleteAuthorization(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailCollision.WithDetails("ada@example.com")).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/auth/google/callback?state=s1&code=c1", "", nil)

	require.NoError(t, h.Callback(withProvider(c, "google")))
	assertStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "EMAIL_COLLISION", decodeError(t, rec).Code)
}

func TestProviderHandler_GetProviderProfile(t *testing.T) {
	h, uc := newProviderHandler(t)
	id := uuid.New()

	uc.EXPECT().
		FetchProviderProfile(mock.Anything, id, entity.ProviderGoogle).
		Return(&entity.ProfileFields{Name: "Ada", Email: "ada@example.com"}, nil).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/v1/providers/google/profile", "", &id)

	require.NoError(t, h.GetProviderProfile(withProvider(c, "google")))
	assertStatus(t, rec, http.StatusOK)

	view := decodeSuccess[ProfileView](t, rec)
	assert.Equal(t, "Ada", view.Name)
	assert.Equal(t, "ada@example.com", view.Email)
}

func TestProviderHandler_GetProviderProfile_ReauthRedirects(t *testing.T) {
	h, uc := newProviderHandler(t)
	id := uuid.New()

	uc.EXPECT().
		FetchProviderProfile(mock.Anything, id, entity.ProviderGoogle).
		Return(nil, domainerrors.NewReauthRequiredError("google")).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/v1/providers/google/profile", "", &id)

	require.NoError(t, h.GetProviderProfile(withProvider(c, "google")))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/google", rec.Header().Get(echo.HeaderLocation))
}

func TestProviderHandler_GetProviderProfile_ReauthAsJSON(t *testing.T) {
	h, uc := newProviderHandler(t)
	id := uuid.New()

	uc.EXPECT().
		FetchProviderProfile(mock.Anything, id, entity.ProviderFacebook).
		Return(nil, domainerrors.NewReauthRequiredError("facebook")).
		Once()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/v1/providers/facebook/profile", "", &id)
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	require.NoError(t, h.GetProviderProfile(withProvider(c, "facebook")))
	assertStatus(t, rec, http.StatusUnauthorized)

	errInfo := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrReauthRequired.ErrorCode(), errInfo.Code)
	assert.Equal(t, map[string]any{"provider": "facebook", "authorize_path": "/auth/facebook"}, errInfo.Details)
}
