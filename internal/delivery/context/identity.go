package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyIdentityID is the key for the authenticated identity.
const KeyIdentityID ContextKey = "identity_id"

// SetIdentityID records the identity resolved from the session token. The
// request context and its logger pick it up too, so every record written
// below the handler names the identity it acted for.
func SetIdentityID(c echo.Context, id uuid.UUID) {
	c.Set(string(KeyIdentityID), id)

	ctx := context.WithValue(c.Request().Context(), KeyIdentityID, id)
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String(string(KeyIdentityID), id.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentityID returns the authenticated identity, if any.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyIdentityID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetIdentityIDFromContext is GetIdentityID for code below the HTTP layer.
func GetIdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyIdentityID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
