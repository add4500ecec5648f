package auth

import (
	"testing"
	"time"

	"passage/config"
	domainerrors "passage/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	identityID := uuid.New()
	token, expiresAt, err := svc.Issue(identityID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identityID, claims.IdentityID)
	assert.Equal(t, sessionIssuer, claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestJWTConfig("secret-two"))
	require.NoError(t, err)

	foreign, _, err := other.Issue(uuid.New())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:  sessionIssuer,
		Subject: uuid.NewString(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"none algorithm": noneToken,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Validate(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	created, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)
	svc := created.(*jwtService)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, _, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
