package auth

import (
	"testing"

	"passage/config"
	domainerrors "passage/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, MinPasswordLength: 8}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("longenough1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "longenough1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())
	hash, err := hasher.Hash("longenough1")
	require.NoError(t, err)

	ok, err := hasher.Verify(hash, "longenough1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(hash, "longenough2")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify(hash, "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	for _, hash := range []string{"", "invalid_hash", "$2a$xx$notreallyahash"} {
		ok, err := hasher.Verify(hash, "longenough1")
		assert.False(t, ok)
		assert.True(t, errors.Is(err, domainerrors.ErrMalformedHash), "hash %q", hash)
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	assert.NoError(t, hasher.ValidatePasswordStrength("longenough1"))
	assert.NoError(t, hasher.ValidatePasswordStrength("12345678"))

	err := hasher.ValidatePasswordStrength("short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	err = hasher.ValidatePasswordStrength(string(long))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestNewBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	assert.Equal(t, defaultMinPasswordLength, hasher.minLength)
}
