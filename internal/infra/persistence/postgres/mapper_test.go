package postgres

import (
	"testing"
	"time"

	"passage/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIdentityMapping_RoundTrip(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).UTC()
	identity := entity.NewIdentity("a@x.com", time.Now().UTC())
	identity.PasswordHash = "hash"
	identity.Profile = entity.ProfileFields{Name: "Alice", Picture: "pic"}
	identity.AttachLink(&entity.ProviderLink{
		Kind:       entity.ProviderGoogle,
		SubjectID:  "g123",
		Profile:    entity.ProfileFields{Name: "Alice G"},
		Credential: entity.AccessCredential{AccessToken: "a", RefreshToken: "r", ExpiresAt: &expiresAt},
	})

	identityM := fromIdentityDomain(identity)
	require.NotNil(t, identityM.Email)
	assert.Equal(t, "a@x.com", *identityM.Email)
	require.Len(t, identityM.Links, 1)
	assert.Equal(t, identity.ID, identityM.Links[0].IdentityID)

	back := toIdentityDomain(identityM)
	assert.Equal(t, identity.Email, back.Email)
	assert.Equal(t, identity.Profile, back.Profile)
	link := back.Link(entity.ProviderGoogle)
	require.NotNil(t, link)
	assert.Equal(t, "g123", link.SubjectID)
	assert.Equal(t, "r", link.Credential.RefreshToken)
	assert.Equal(t, expiresAt, *link.Credential.ExpiresAt)
}

func TestIdentityMapping_EmptyEmailIsNull(t *testing.T) {
	identityM := fromIdentityDomain(entity.NewIdentity("", time.Now()))

	assert.Nil(t, identityM.Email)
	assert.Equal(t, "", toIdentityDomain(identityM).Email)
}

func TestConstraintViolationHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))
}
