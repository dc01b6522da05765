package main

import (
	"context"
	"log/slog"
	"os"

	"resumecoach/config"
	"resumecoach/internal/delivery"
	"resumecoach/internal/delivery/api"
	apimiddleware "resumecoach/internal/delivery/api/middleware"
	"resumecoach/internal/delivery/api/router/handler"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/auth"
	"resumecoach/internal/infra/inference"
	logs "resumecoach/internal/infra/log"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/infra/persistence/postgres"
	"resumecoach/internal/infra/pubsub"
	"resumecoach/internal/infra/tips"
	"resumecoach/internal/infra/vectorindex"
	"resumecoach/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedOnStartParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Provider service.InferenceProvider
	Index    service.TipIndex
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewAnalysisRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewScryptHasher,
			auth.NewJWTService,
			inference.NewInferenceProvider,
			vectorindex.NewTipIndex,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewModerationGate,
			impl.NewRetrievalAugmenter,
			impl.NewFeedbackGenerator,
			impl.NewHistoryRecorder,
			impl.NewAnalysisService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewAnalysisHandler,
			handler.NewHealthHandler,
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

// seedOnStart fills the tip index from the configured corpus before serving.
func seedOnStart(params seedOnStartParams) error {
	if params.Config.Tips == nil || !params.Config.Tips.SeedOnStart {
		return nil
	}

	source, err := tips.NewBlobSource(params.Config)
	if err != nil {
		return errors.Wrap(err, "tips.seedOnStart is set")
	}

	seeder := impl.NewTipSeeder(impl.TipSeederParams{
		Source:   source,
		Provider: params.Provider,
		Index:    params.Index,
		Logger:   params.Logger,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := seeder.Seed(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to seed tip index")
			}
			params.Logger.Info("Tip index seeded", slog.Int("tips", seeded))

			return nil
		},
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
