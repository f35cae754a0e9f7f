package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/scheduler"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/docstore"
	"marketplace/internal/infra/firebase"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/mail"
	"marketplace/internal/infra/persistence/document"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/infra/storage"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

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
			closeAdminSessions,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		docstore.NewDocumentStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			document.NewUserRepository,
			document.NewPartnerRepository,
			document.NewApplicationRepository,
			document.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseIdentityProvider,
			mail.NewMailer,
			storage.NewFileStorage,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewProfileService,
			impl.NewApplicationService,
			impl.NewAdminSessionService,
			impl.NewDocumentService,
			impl.NewUploadService,
			impl.NewDeviceService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewApplicationHandler,
			handler.NewAdminHandler,
			handler.NewNotificationHandler,
			handler.NewRecordHandler,
			handler.NewUploadHandler,
			handler.NewDeviceHandler,
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
				scheduler.NewReconcileScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// closeAdminSessions releases every admin subscription on shutdown.
func closeAdminSessions(lc fx.Lifecycle, sessions usecase.AdminSessionUsecase) {
	lc.Append(fx.StopHook(sessions.CloseAll))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
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
