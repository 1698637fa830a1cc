package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/imageproc"
	"voyago/pkg/storage"
	"voyago/pkg/utils"
)

type ImageOwner string

const (
	OwnerTour  ImageOwner = "tours"
	OwnerHotel ImageOwner = "hotels"
)

type ImageService interface {
	Upload(ctx context.Context, owner ImageOwner, ownerID string, files []*multipart.FileHeader) ([]db_models.Image, error)
	ListByTour(ctx context.Context, tourID string) ([]db_models.Image, error)
	Delete(ctx context.Context, id string) error
}

type imageService struct {
	images    repositories.ImageRepository
	tours     repositories.TourRepository
	hotels    repositories.HotelRepository
	processor *imageproc.Processor
	files     storage.FileStore
	maxBytes  int64
	log       *zap.Logger
}

func NewImageService(
	images repositories.ImageRepository,
	tours repositories.TourRepository,
	hotels repositories.HotelRepository,
	processor *imageproc.Processor,
	files storage.FileStore,
	maxBytes int64,
	log *zap.Logger,
) ImageService {
	return &imageService{
		images:    images,
		tours:     tours,
		hotels:    hotels,
		processor: processor,
		files:     files,
		maxBytes:  maxBytes,
		log:       log,
	}
}

// Upload validates every file before writing any of them, then stores the
// resized copies and records one image row per file.
func (s *imageService) Upload(ctx context.Context, owner ImageOwner, ownerID string, files []*multipart.FileHeader) ([]db_models.Image, error) {
	if len(files) == 0 {
		return nil, utils.Validationf("at least one file is required")
	}
	for _, fh := range files {
		if fh.Size > s.maxBytes {
			return nil, fmt.Errorf("%w: %s is larger than %d bytes", utils.ErrFileTooLarge, fh.Filename, s.maxBytes)
		}
	}

	var (
		bounds imageproc.Bounds
		alt    string
		bind   func(img *db_models.Image)
	)
	switch owner {
	case OwnerTour:
		tour, err := s.findTour(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		bounds, alt = imageproc.TourBounds, tour.Title
		bind = func(img *db_models.Image) {
			id := tour.ID
			img.TourID = &id
		}
	case OwnerHotel:
		hotel, err := s.findHotel(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		bounds, alt = imageproc.HotelBounds, hotel.Name
		bind = func(img *db_models.Image) {
			id := hotel.ID
			img.HotelID = &id
		}
	default:
		return nil, utils.Validationf("unknown image owner %q", owner)
	}

	images := make([]db_models.Image, 0, len(files))
	var saved []string
	for _, fh := range files {
		url, err := s.store(owner, fh, bounds)
		if err != nil {
			s.cleanup(saved)
			return nil, err
		}
		saved = append(saved, url)
		img := db_models.Image{URL: url, Alt: alt}
		bind(&img)
		images = append(images, img)
	}
	if err := s.images.InsertMany(ctx, images); err != nil {
		s.cleanup(saved)
		return nil, dbError("insert images", err)
	}
	return images, nil
}

func (s *imageService) store(owner ImageOwner, fh *multipart.FileHeader, bounds imageproc.Bounds) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, ext, err := s.processor.Process(f, bounds)
	if err != nil {
		if errors.Is(err, imageproc.ErrUnsupportedFormat) {
			return "", fmt.Errorf("%w: %s", utils.ErrInvalidImage, fh.Filename)
		}
		return "", err
	}
	return s.files.Save(string(owner), uuid.NewString()+"."+ext, data)
}

func (s *imageService) cleanup(urls []string) {
	for _, u := range urls {
		if err := s.files.Remove(u); err != nil {
			s.log.Warn("remove partial upload", zap.String("url", u), zap.Error(err))
		}
	}
}

func (s *imageService) findTour(ctx context.Context, id string) (*db_models.Tour, error) {
	tourID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTourNotFound
	}
	tour, err := s.tours.FindById(ctx, tourID)
	if err != nil {
		return nil, dbError("find tour", err)
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	return tour, nil
}

func (s *imageService) findHotel(ctx context.Context, id string) (*db_models.Hotel, error) {
	hotelID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrHotelNotFound
	}
	hotel, err := s.hotels.FindById(ctx, hotelID)
	if err != nil {
		return nil, dbError("find hotel", err)
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}
	return hotel, nil
}

func (s *imageService) ListByTour(ctx context.Context, tourID string) ([]db_models.Image, error) {
	id, err := parseID(tourID, "tourId")
	if err != nil {
		return nil, err
	}
	images, err := s.images.ListByTour(ctx, id)
	if err != nil {
		return nil, dbError("list images", err)
	}
	return images, nil
}

// Delete removes the row and then tries to remove the file; a missing or
// unremovable file is only logged.
func (s *imageService) Delete(ctx context.Context, id string) error {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrImageNotFound
	}
	img, err := s.images.FindById(ctx, imageID)
	if err != nil {
		return dbError("find image", err)
	}
	if img == nil {
		return utils.ErrImageNotFound
	}
	if err := s.images.Delete(ctx, imageID); err != nil {
		return dbError("delete image", err)
	}
	removeImageFiles(s.files, s.log, []db_models.Image{*img})
	return nil
}
