package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideWishlistRepo, providePreferencesRepo,
	provideWishlistService, providePreferencesService,
	controllers.NewUserController,
)

func provideWishlistRepo(db *gorm.DB) repositories.WishlistRepository {
	return repositories.NewWishlistRepository(db)
}

func providePreferencesRepo(db *gorm.DB) repositories.PreferencesRepository {
	return repositories.NewPreferencesRepository(db)
}

func provideWishlistService(wishlist repositories.WishlistRepository, tours repositories.TourRepository, hotels repositories.HotelRepository) services.WishlistService {
	return services.NewWishlistService(wishlist, tours, hotels)
}

func providePreferencesService(prefs repositories.PreferencesRepository) services.PreferencesService {
	return services.NewPreferencesService(prefs)
}
