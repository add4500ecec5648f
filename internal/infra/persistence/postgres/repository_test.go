package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementRecorder matches like sqlmock's regexp matcher and keeps every
// statement it accepted, so tests can assert on what was sent.
type statementRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *statementRecorder) Match(expectedSQL, actualSQL string) error {
	if err := sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, actualSQL)

	return nil
}

func (r *statementRecorder) containing(fragment string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []string
	for _, stmt := range r.statements {
		if strings.Contains(stmt, fragment) {
			found = append(found, stmt)
		}
	}

	return found
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *statementRecorder) {
	t.Helper()

	recorder := &statementRecorder{}
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return db, mock, recorder
}

const (
	guardedCredentialUpdate   = `UPDATE "provider_links" SET .*"access_token".* WHERE \(identity_id = \$\d+ AND kind = \$\d+\) AND \(expires_at IS NULL OR expires_at <= \$\d+\)$`
	unguardedCredentialUpdate = `UPDATE "provider_links" SET .*"access_token".* WHERE identity_id = \$\d+ AND kind = \$\d+$`
	countLinks                = `SELECT count\(\*\) FROM "provider_links" WHERE identity_id = \$\d+ AND kind = \$\d+`
)

func TestCredentialRepository_ReplaceCredential(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		credential entity.AccessCredential
		setup      func(mock sqlmock.Sqlmock)
		wantErr    error
	}{
		{
			name:       "newer expiry is written in one statement",
			credential: entity.AccessCredential{AccessToken: "at-2", ExpiresAt: &expiresAt, RefreshToken: "rt-1"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(guardedCredentialUpdate).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:       "older expiry matches no row and is reported stale",
			credential: entity.AccessCredential{AccessToken: "at-old", ExpiresAt: &expiresAt},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(guardedCredentialUpdate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countLinks).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: repository.ErrStaleCredential,
		},
		{
			name:       "missing link",
			credential: entity.AccessCredential{AccessToken: "at-2", ExpiresAt: &expiresAt},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(guardedCredentialUpdate).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countLinks).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			wantErr: repository.ErrLinkNotFound,
		},
		{
			name:       "credential without expiry is written unconditionally",
			credential: entity.AccessCredential{AccessToken: "forever"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(unguardedCredentialUpdate).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := newMockDB(t)
			tt.setup(mock)

			err := NewCredentialRepository(db).ReplaceCredential(context.Background(), uuid.New(), entity.ProviderGoogle, tt.credential)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIdentityRepository_CreateUniqueConflictRollsBackToSavepoint(t *testing.T) {
	db, mock, _ := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^SAVEPOINT sp\d+$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "identities"`).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_provider_links_kind_subject"})
	mock.ExpectExec(`^ROLLBACK TO SAVEPOINT sp\d+$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	// The linker creates identities inside its own transaction, so the
	// repository sees a transaction handle and nests with a savepoint.
	tx := db.Begin()
	require.NoError(t, tx.Error)

	identity := entity.NewIdentity("", time.Now())
	identity.AttachLink(&entity.ProviderLink{Kind: entity.ProviderGoogle, SubjectID: "g123", LinkedAt: time.Now()})

	err := NewIdentityRepository(tx).CreateUnique(context.Background(), identity)
	assert.ErrorIs(t, err, repository.ErrConflict)

	// The outer transaction survives the failed insert.
	require.NoError(t, tx.Rollback().Error)
}

func TestIdentityRepository_SaveReconcilesLinks(t *testing.T) {
	db, mock, recorder := newMockDB(t)

	identity := entity.NewIdentity("a@x.com", time.Now())
	identity.AttachLink(&entity.ProviderLink{
		Kind:       entity.ProviderGoogle,
		SubjectID:  "g123",
		Profile:    entity.ProfileFields{Name: "Alice G"},
		Credential: entity.AccessCredential{AccessToken: "must-not-be-written"},
	})
	// Facebook was relinked to another account.
	identity.AttachLink(&entity.ProviderLink{Kind: entity.ProviderFacebook, SubjectID: "fb-new", LinkedAt: time.Now()})

	googleRowID := uuid.New()
	facebookRowID := uuid.New()
	existing := sqlmock.NewRows([]string{"id", "identity_id", "kind", "subject_id", "access_token"}).
		AddRow(googleRowID.String(), identity.ID.String(), string(entity.ProviderGoogle), "g123", "stored-token").
		AddRow(facebookRowID.String(), identity.ID.String(), string(entity.ProviderFacebook), "fb9", "stored-token")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "identities" SET .* WHERE id = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "provider_links" WHERE identity_id = \$1`).WillReturnRows(existing)
	// Surviving link: profile columns only.
	mock.ExpectExec(`UPDATE "provider_links" SET .*"id" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))
	// The old facebook link is dropped and the new one inserted.
	mock.ExpectExec(`DELETE FROM "provider_links" WHERE .*"id" = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "provider_links"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	require.NoError(t, NewIdentityRepository(db).Save(context.Background(), identity))

	updates := recorder.containing(`UPDATE "provider_links"`)
	require.Len(t, updates, 1)
	assert.NotContains(t, updates[0], "access_token")
	assert.NotContains(t, updates[0], "refresh_token")
}

func TestIdentityRepository_SaveMissingIdentity(t *testing.T) {
	db, mock, _ := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "identities" SET .* WHERE id = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewIdentityRepository(db).Save(context.Background(), entity.NewIdentity("a@x.com", time.Now()))
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
}

func TestDeleteExpiredTokens(t *testing.T) {
	db, mock, _ := newMockDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM "verification_tokens" WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := deleteExpiredTokens(context.Background(), db, now)

	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)
}
