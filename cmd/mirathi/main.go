package main

import (
	"context"
	"log/slog"
	"os"

	"mirathi/config"
	"mirathi/internal/delivery"
	"mirathi/internal/delivery/http"
	"mirathi/internal/delivery/http/middleware"
	"mirathi/internal/delivery/http/router/handler"
	"mirathi/internal/domain/repository"
	"mirathi/internal/domain/service"
	"mirathi/internal/infra/auth"
	"mirathi/internal/infra/evidence"
	logs "mirathi/internal/infra/log"
	"mirathi/internal/infra/persistence/postgres"
	"mirathi/internal/infra/pubsub"
	"mirathi/internal/infra/qrcode"
	"mirathi/internal/usecase"
	"mirathi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFamilyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			evidence.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFamilyService,
			impl.NewEvidenceService,
			newDashboardService,
		),
	)
}

// newDashboardService creates the dashboard service with the configured
// timeline cap.
func newDashboardService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return impl.NewDashboardService(txManager, qrService, cfg.Dashboard.TimelineLimit, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFamilyHandler,
			handler.NewDashboardHandler,
			handler.NewEvidenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
