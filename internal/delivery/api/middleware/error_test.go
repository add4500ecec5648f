package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"passage/internal/delivery/api/response"
	domainerrors "passage/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *response.ErrorInfo) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec, body.Error
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("wrapped app error keeps its status and details", func(t *testing.T) {
		rec, info := handleError(t, errors.Wrap(domainerrors.ErrProviderNotLinked.WithDetails("google"), "fetch profile"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROVIDER_NOT_LINKED", info.Code)
		assert.Equal(t, "google", info.Details)
	})

	t.Run("reauth carries the authorize path", func(t *testing.T) {
		rec, info := handleError(t, errors.Wrap(domainerrors.NewReauthRequiredError("google"), "refresh"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, map[string]any{"provider": "google", "authorize_path": "/auth/google"}, info.Details)
	})

	t.Run("echo http error", func(t *testing.T) {
		rec, info := handleError(t, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", info.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		rec, info := handleError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", info.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
