// Package persistence selects the storage backend behind the repository interfaces.
package persistence

import (
	"log/slog"
	"strings"

	"passage/config"
	"passage/internal/domain/repository"
	"passage/internal/errors"
	"passage/internal/infra/persistence/memory"
	"passage/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every repository the usecases depend on, backed by one store.
type Repositories struct {
	fx.Out

	TxManager             repository.TransactionManager
	IdentityRepo          repository.IdentityRepository
	CredentialRepo        repository.CredentialRepository
	VerificationTokenRepo repository.VerificationTokenRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	driver := strings.ToLower(params.Config.Storage.Driver)

	switch driver {
	case DriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager:             memory.NewTransactionManager(store),
			IdentityRepo:          memory.NewIdentityRepository(store),
			CredentialRepo:        memory.NewCredentialRepository(store),
			VerificationTokenRepo: memory.NewVerificationTokenRepository(store),
		}, nil

	case DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:             postgres.NewTransactionManager(db),
			IdentityRepo:          postgres.NewIdentityRepository(db),
			CredentialRepo:        postgres.NewCredentialRepository(db),
			VerificationTokenRepo: postgres.NewVerificationTokenRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
