package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/storage"
	"voyago/pkg/utils"
)

const defaultMaxPrice = 1_000_000

type TourService interface {
	ListTours(ctx context.Context, featuredOnly bool) ([]db_models.Tour, error)
	GetTour(ctx context.Context, id string) (*db_models.Tour, error)
	SearchTours(ctx context.Context, q request_models.SearchQuery) ([]db_models.Tour, error)
	CreateTour(ctx context.Context, req request_models.TourRequest) (*db_models.Tour, error)
	UpdateTour(ctx context.Context, id string, req request_models.TourRequest) (*db_models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
}

type HotelService interface {
	ListHotels(ctx context.Context, featuredOnly bool) ([]db_models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*db_models.Hotel, error)
	SearchHotels(ctx context.Context, q request_models.SearchQuery) ([]db_models.Hotel, error)
	CreateHotel(ctx context.Context, req request_models.HotelRequest) (*db_models.Hotel, error)
	UpdateHotel(ctx context.Context, id string, req request_models.HotelRequest) (*db_models.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

func catalogSearch(q request_models.SearchQuery) repositories.CatalogSearch {
	s := repositories.CatalogSearch{
		Query:    strings.TrimSpace(q.Query),
		Location: strings.TrimSpace(q.Location),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}
	if s.MinPrice < 0 {
		s.MinPrice = 0
	}
	if s.MaxPrice <= 0 {
		s.MaxPrice = defaultMaxPrice
	}
	return s
}

// removeImageFiles is best effort: the rows are already gone.
func removeImageFiles(files storage.FileStore, log *zap.Logger, images []db_models.Image) {
	for _, img := range images {
		if err := files.Remove(img.URL); err != nil {
			log.Warn("remove image file", zap.String("url", img.URL), zap.Error(err))
		}
	}
}

type tourService struct {
	tours repositories.TourRepository
	files storage.FileStore
	log   *zap.Logger
}

func NewTourService(tours repositories.TourRepository, files storage.FileStore, log *zap.Logger) TourService {
	return &tourService{tours: tours, files: files, log: log}
}

func (s *tourService) ListTours(ctx context.Context, featuredOnly bool) ([]db_models.Tour, error) {
	tours, err := s.tours.List(ctx, featuredOnly)
	if err != nil {
		return nil, dbError("list tours", err)
	}
	return tours, nil
}

func (s *tourService) GetTour(ctx context.Context, id string) (*db_models.Tour, error) {
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

func (s *tourService) SearchTours(ctx context.Context, q request_models.SearchQuery) ([]db_models.Tour, error) {
	tours, err := s.tours.Search(ctx, catalogSearch(q))
	if err != nil {
		return nil, dbError("search tours", err)
	}
	return tours, nil
}

func validateTour(req request_models.TourRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return utils.Validationf("title is required")
	case strings.TrimSpace(req.Description) == "":
		return utils.Validationf("description is required")
	case strings.TrimSpace(req.Location) == "":
		return utils.Validationf("location is required")
	case req.Price == nil || *req.Price < 0:
		return utils.Validationf("price must not be negative")
	case req.Duration < 1:
		return utils.Validationf("duration must be at least 1")
	case req.MaxPeople < 1:
		return utils.Validationf("maxPeople must be at least 1")
	}
	return nil
}

func applyTour(t *db_models.Tour, req request_models.TourRequest) {
	t.Title = strings.TrimSpace(req.Title)
	t.Description = strings.TrimSpace(req.Description)
	t.Location = strings.TrimSpace(req.Location)
	t.Price = *req.Price
	t.Duration = req.Duration
	t.MaxPeople = req.MaxPeople
	t.Featured = req.Featured
}

func (s *tourService) CreateTour(ctx context.Context, req request_models.TourRequest) (*db_models.Tour, error) {
	if err := validateTour(req); err != nil {
		return nil, err
	}
	tour := &db_models.Tour{}
	applyTour(tour, req)
	if err := s.tours.Insert(ctx, tour); err != nil {
		return nil, dbError("insert tour", err)
	}
	return tour, nil
}

func (s *tourService) UpdateTour(ctx context.Context, id string, req request_models.TourRequest) (*db_models.Tour, error) {
	if err := validateTour(req); err != nil {
		return nil, err
	}
	tour, err := s.GetTour(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTour(tour, req)
	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, dbError("update tour", err)
	}
	return tour, nil
}

func (s *tourService) DeleteTour(ctx context.Context, id string) error {
	tour, err := s.GetTour(ctx, id)
	if err != nil {
		return err
	}
	images, err := s.tours.DeleteCascade(ctx, tour.ID)
	if err != nil {
		return dbError("delete tour", err)
	}
	removeImageFiles(s.files, s.log, images)
	s.log.Info("tour deleted", zap.String("tour_id", tour.ID.String()), zap.Int("images", len(images)))
	return nil
}

type hotelService struct {
	hotels repositories.HotelRepository
	files  storage.FileStore
	log    *zap.Logger
}

func NewHotelService(hotels repositories.HotelRepository, files storage.FileStore, log *zap.Logger) HotelService {
	return &hotelService{hotels: hotels, files: files, log: log}
}

func (s *hotelService) ListHotels(ctx context.Context, featuredOnly bool) ([]db_models.Hotel, error) {
	hotels, err := s.hotels.List(ctx, featuredOnly)
	if err != nil {
		return nil, dbError("list hotels", err)
	}
	return hotels, nil
}

func (s *hotelService) GetHotel(ctx context.Context, id string) (*db_models.Hotel, error) {
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

func (s *hotelService) SearchHotels(ctx context.Context, q request_models.SearchQuery) ([]db_models.Hotel, error) {
	hotels, err := s.hotels.Search(ctx, catalogSearch(q))
	if err != nil {
		return nil, dbError("search hotels", err)
	}
	return hotels, nil
}

func validateHotel(req request_models.HotelRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return utils.Validationf("name is required")
	case strings.TrimSpace(req.Description) == "":
		return utils.Validationf("description is required")
	case strings.TrimSpace(req.Location) == "":
		return utils.Validationf("location is required")
	case req.Price == nil || *req.Price < 0:
		return utils.Validationf("price must not be negative")
	case req.Rating == nil || *req.Rating < 0 || *req.Rating > 5:
		return utils.Validationf("rating must be between 0 and 5")
	}
	return nil
}

func applyHotel(h *db_models.Hotel, req request_models.HotelRequest) {
	h.Name = strings.TrimSpace(req.Name)
	h.Description = strings.TrimSpace(req.Description)
	h.Location = strings.TrimSpace(req.Location)
	h.Price = *req.Price
	h.Rating = *req.Rating
	amenities := make([]string, 0, len(req.Amenities))
	for _, a := range req.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	h.Amenities = datatypes.JSONSlice[string](amenities)
	h.Featured = req.Featured
}

func (s *hotelService) CreateHotel(ctx context.Context, req request_models.HotelRequest) (*db_models.Hotel, error) {
	if err := validateHotel(req); err != nil {
		return nil, err
	}
	hotel := &db_models.Hotel{}
	applyHotel(hotel, req)
	if err := s.hotels.Insert(ctx, hotel); err != nil {
		return nil, dbError("insert hotel", err)
	}
	return hotel, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, id string, req request_models.HotelRequest) (*db_models.Hotel, error) {
	if err := validateHotel(req); err != nil {
		return nil, err
	}
	hotel, err := s.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	applyHotel(hotel, req)
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, dbError("update hotel", err)
	}
	return hotel, nil
}

func (s *hotelService) DeleteHotel(ctx context.Context, id string) error {
	hotel, err := s.GetHotel(ctx, id)
	if err != nil {
		return err
	}
	images, err := s.hotels.DeleteCascade(ctx, hotel.ID)
	if err != nil {
		return dbError("delete hotel", err)
	}
	removeImageFiles(s.files, s.log, images)
	s.log.Info("hotel deleted", zap.String("hotel_id", hotel.ID.String()), zap.Int("images", len(images)))
	return nil
}
