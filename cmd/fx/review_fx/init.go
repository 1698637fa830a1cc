package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviews repositories.ReviewRepository, bookings repositories.BookingRepository, tours repositories.TourRepository) services.ReviewService {
	return services.NewReviewService(reviews, bookings, tours)
}

func provideReviewController(reviewService services.ReviewService) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
