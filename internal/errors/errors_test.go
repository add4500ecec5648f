package errors

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsType(t *testing.T) {
	err := Wrap(Wrapf(&pgconn.PgError{Code: "23505"}, "insert %s", "identities"), "create identity")

	pgErr, ok := AsType[*pgconn.PgError](err)
	require.True(t, ok)
	assert.Equal(t, "23505", pgErr.Code)

	_, ok = AsType[*pgconn.PgError](New("plain"))
	assert.False(t, ok)
}
