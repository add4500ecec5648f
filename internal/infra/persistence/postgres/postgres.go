package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"passage/config"
	"passage/internal/domain/lifecycle"
	"passage/internal/errors"
	"passage/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	// Verification tokens are rejected once expired; the sweep only reclaims the rows.
	expiredTokenSweepInterval = time.Hour
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the identity store, migrates the identity, link and token tables
// on start and runs the pool monitor and expired-token sweep until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	backgroundCtx, cancelBackground := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "failed to migrate PostgreSQL schema")
			}

			go monitorDBPool(backgroundCtx, params.Logger, sqlDB, dbPoolMonitorInterval)
			go sweepExpiredTokens(backgroundCtx, params.Logger, db, expiredTokenSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelBackground()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func sweepExpiredTokens(ctx context.Context, logger *slog.Logger, db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		removed, err := deleteExpiredTokens(ctx, db, time.Now())
		switch {
		case err != nil && ctx.Err() == nil:
			logger.WarnContext(ctx, "Failed to sweep expired verification tokens", slog.Any("error", err))
		case removed > 0:
			logger.DebugContext(ctx, "Swept expired verification tokens", slog.Int64("removed", removed))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// deleteExpiredTokens removes verification tokens that can no longer be redeemed.
func deleteExpiredTokens(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.VerificationTokenModel{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "failed to delete expired verification tokens")
	}

	return res.RowsAffected, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
