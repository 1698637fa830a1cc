package payment_plan_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/config"
	"voyago/pkg/metrics"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		providePaymentPlanRepo, providePaymentPlanService, providePaymentPlanController,
		provideOverdueSweeper,
	),
	fx.Invoke(startOverdueSweeper),
)

func providePaymentPlanRepo(db *gorm.DB) repositories.PaymentPlanRepository {
	return repositories.NewPaymentPlanRepository(db)
}

func providePaymentPlanService(
	db *gorm.DB,
	bookings repositories.BookingRepository,
	plans repositories.PaymentPlanRepository,
	publisher mq.EventPublisher,
	m *metrics.Metrics,
	clock utils.TimeProvider,
	log *zap.Logger,
) services.PaymentPlanService {
	return services.NewPaymentPlanService(db, bookings, plans, publisher, m, clock, log)
}

func providePaymentPlanController(planService services.PaymentPlanService) *controllers.PaymentPlanController {
	return controllers.NewPaymentPlanController(planService)
}

func provideOverdueSweeper(planService services.PaymentPlanService, cfg config.App, log *zap.Logger) *services.OverdueSweeper {
	return services.NewOverdueSweeper(planService, cfg.OverdueSweepInterval, log)
}

func startOverdueSweeper(lc fx.Lifecycle, sweeper *services.OverdueSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
