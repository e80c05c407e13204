package main

import (
	"context"
	"log/slog"
	"os"

	"huddle/config"
	"huddle/internal/delivery"
	"huddle/internal/delivery/api"
	apimiddleware "huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/router/handler"
	"huddle/internal/delivery/worker"
	workerhandler "huddle/internal/delivery/worker/handler"
	"huddle/internal/delivery/ws"
	"huddle/internal/infra/auth"
	"huddle/internal/infra/cache"
	logs "huddle/internal/infra/log"
	"huddle/internal/infra/persistence/postgres"
	"huddle/internal/realtime"
	"huddle/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
		realtime.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRoomRepository,
			postgres.NewChallengeRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.New,
			auth.NewIdentityResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMembershipService,
			impl.NewNotificationService,
			impl.NewRoomService,
			impl.NewEventRouter,
			impl.NewDomainEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewChatHandler,
			handler.NewNotificationHandler,
			ws.NewHandler,
			workerhandler.NewEventIngestor,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		// Optional transports return nil when they are not configured
		if delivery == nil {
			continue
		}

		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
