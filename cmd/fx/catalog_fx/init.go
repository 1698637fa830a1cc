package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/config"
	"voyago/pkg/imageproc"
	"voyago/pkg/storage"
)

var Module = fx.Provide(
	provideTourRepo, provideHotelRepo, provideImageRepo,
	provideFileStore, provideImageProcessor,
	provideTourService, provideHotelService, provideImageService,
	controllers.NewTourController, controllers.NewHotelController, controllers.NewImageController,
)

func provideTourRepo(db *gorm.DB) repositories.TourRepository {
	return repositories.NewTourRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideImageRepo(db *gorm.DB) repositories.ImageRepository {
	return repositories.NewImageRepository(db)
}

func provideFileStore(cfg config.App) storage.FileStore {
	return storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix)
}

func provideImageProcessor(cfg config.App) *imageproc.Processor {
	return imageproc.NewProcessor(cfg.Uploads.JPEGQuality)
}

func provideTourService(tours repositories.TourRepository, files storage.FileStore, log *zap.Logger) services.TourService {
	return services.NewTourService(tours, files, log)
}

func provideHotelService(hotels repositories.HotelRepository, files storage.FileStore, log *zap.Logger) services.HotelService {
	return services.NewHotelService(hotels, files, log)
}

func provideImageService(
	images repositories.ImageRepository,
	tours repositories.TourRepository,
	hotels repositories.HotelRepository,
	processor *imageproc.Processor,
	files storage.FileStore,
	cfg config.App,
	log *zap.Logger,
) services.ImageService {
	return services.NewImageService(images, tours, hotels, processor, files, cfg.Uploads.MaxFileBytes, log)
}
