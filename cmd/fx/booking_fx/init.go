package booking_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/metrics"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	db *gorm.DB,
	bookings repositories.BookingRepository,
	plans repositories.PaymentPlanRepository,
	tours repositories.TourRepository,
	hotels repositories.HotelRepository,
	publisher mq.EventPublisher,
	m *metrics.Metrics,
	clock utils.TimeProvider,
	log *zap.Logger,
) services.BookingService {
	return services.NewBookingService(db, bookings, plans, tours, hotels, publisher, m, clock, log)
}

func provideBookingController(bookingService services.BookingService) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
