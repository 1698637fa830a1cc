package marketing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideMarketingRepo, provideMarketingService, provideMarketingController,
)

func provideMarketingRepo(db *gorm.DB) repositories.MarketingRepository {
	return repositories.NewMarketingRepository(db)
}

func provideMarketingService(repo repositories.MarketingRepository, publisher mq.EventPublisher, clock utils.TimeProvider, log *zap.Logger) services.MarketingService {
	return services.NewMarketingService(repo, publisher, clock, log)
}

func provideMarketingController(marketingService services.MarketingService) *controllers.MarketingController {
	return controllers.NewMarketingController(marketingService)
}
