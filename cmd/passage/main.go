package main

import (
	"context"
	"log/slog"
	"os"

	"passage/config"
	"passage/internal/delivery"
	"passage/internal/delivery/api"
	"passage/internal/delivery/api/middleware"
	"passage/internal/delivery/api/router/handler"
	"passage/internal/infra/auth"
	"passage/internal/infra/auth/oauth"
	logs "passage/internal/infra/log"
	"passage/internal/infra/mail"
	"passage/internal/infra/persistence"
	"passage/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewRegistryFromConfig,
			oauth.NewMemoryStateStore,
			mail.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenVault,
			impl.NewTokenRefresher,
			impl.NewSessionAuthorizer,
			impl.NewIdentityLinker,
			impl.NewVerificationService,
			impl.NewAccountService,
			impl.NewProviderAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProviderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
