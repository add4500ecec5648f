package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := NewRequestIDMiddleware(logger)

	t.Run("keeps the client id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.Process(func(c echo.Context) error {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

			return nil
		})(c)
		require.NoError(t, err)
		assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	})

	t.Run("replaces malformed ids", func(t *testing.T) {
		tests := []struct {
			name string
			id   string
		}{
			{name: "newline", id: "req-1\nlevel=ERROR"},
			{name: "bearer token", id: "Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig"},
			{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := echo.New()
				req := httptest.NewRequest(http.MethodGet, "/health", nil)
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.id)
				rec := httptest.NewRecorder()
				c := e.NewContext(req, rec)

				require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

				got := rec.Header().Get(deliverycontext.HeaderXRequestID)
				assert.NotEqual(t, tt.id, got)
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			})
		}
	})
}

func TestRequestLogger_CarriesIdentityOnceAuthenticated(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	c := e.NewContext(req, httptest.NewRecorder())
	identityID := uuid.New()

	require.NoError(t, m.Process(func(c echo.Context) error {
		deliverycontext.SetIdentityID(c, identityID)

		ctx := c.Request().Context()
		got, ok := deliverycontext.GetIdentityIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, identityID, got)

		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("refreshing credential")

		return nil
	})(c))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, identityID.String(), entry["identity_id"])
}

func TestLoggerMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc123&state=xyz789&lang=en", nil), rec)
	identityID := uuid.New()
	deliverycontext.SetIdentityID(c, identityID)

	require.NoError(t, m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c))

	assert.NotContains(t, buf.String(), "abc123")
	assert.NotContains(t, buf.String(), "xyz789")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "code=REDACTED&lang=en&state=REDACTED", entry["query"])
	assert.Equal(t, identityID.String(), entry["identity_id"])
	assert.EqualValues(t, http.StatusNoContent, entry["status"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
