package main

import (
	"context"
	"log/slog"

	"civic/config"
	"civic/internal/domain/lifecycle"
	"civic/internal/errors"
	"civic/internal/infra/fixture"
	logs "civic/internal/infra/log"
	"civic/internal/infra/metrics"
	"civic/internal/infra/persistence/postgres"
	"civic/internal/infra/validation"
	"civic/internal/usecase"
	"civic/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// seeder is what a command needs once the application graph is started.
type seeder struct {
	usecase usecase.SeedUsecase
	metrics *metrics.SeedMetrics
	logger  *slog.Logger
}

func newApp(cfg *config.Config, s *seeder) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Populate(&s.usecase, &s.metrics, &s.logger),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewActionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fixture.New,
			validation.New,
			metrics.AsSeedMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSeedService,
		),
	)
}

// withSeeder starts the application, runs fn and stops the application again.
// fn's context is canceled on SIGINT or SIGTERM.
func withSeeder(ctx context.Context, cfg *config.Config, fn func(context.Context, *seeder) error) error {
	ctx, stop := interruptContext(ctx)
	defer stop()

	s := &seeder{}
	app := newApp(cfg, s)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx, s)
	if runErr != nil {
		s.logger.ErrorContext(ctx, "Seeding failed", slog.Any("error", runErr))
	}

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
