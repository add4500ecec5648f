package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"passage/config"
	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDebugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), nil)

	tests := []struct {
		name       string
		sql        string
		wantParams bool
	}{
		{name: "credential update", sql: `UPDATE "provider_links" SET "access_token"=$1,"refresh_token"=$2`, wantParams: false},
		{name: "password write", sql: `UPDATE "identities" SET "password_hash"=$1`, wantParams: false},
		{name: "token lookup", sql: `SELECT * FROM "verification_tokens" WHERE purpose = $1 AND token_hash = $2`, wantParams: false},
		{name: "plain lookup", sql: `SELECT * FROM "identities" WHERE email = $1`, wantParams: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, params := l.ParamsFilter(context.Background(), tt.sql, "value-1", "value-2")

			assert.Equal(t, tt.sql, sql)
			if tt.wantParams {
				assert.Equal(t, []any{"value-1", "value-2"}, params)
			} else {
				assert.Nil(t, params)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), newDebugConfig())

	requestLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return `SELECT 1`, 1 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-9"`)
	assert.Contains(t, scoped.String(), `SELECT 1`)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), nil)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return `SELECT 1`, 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_KeepsCredentialsOutOfQueryLog(t *testing.T) {
	var buf bytes.Buffer
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), newDebugConfig()),
	})
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "provider_links"`).WillReturnResult(sqlmock.NewResult(0, 1))

	expiresAt := time.Now().Add(time.Hour)
	err = NewCredentialRepository(db).ReplaceCredential(context.Background(), uuid.New(), entity.ProviderGoogle, entity.AccessCredential{
		AccessToken:  "at-secret",
		RefreshToken: "rt-secret",
		ExpiresAt:    &expiresAt,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, buf.String(), `UPDATE \"provider_links\"`)
	assert.NotContains(t, buf.String(), "at-secret")
	assert.NotContains(t, buf.String(), "rt-secret")
}
