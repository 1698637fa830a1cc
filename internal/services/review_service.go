package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type ReviewService interface {
	Create(ctx context.Context, caller utils.Identity, req request_models.CreateReviewRequest) (*db_models.Review, error)
	ListByTour(ctx context.Context, tourID string) ([]db_models.Review, error)
}

type reviewService struct {
	reviews  repositories.ReviewRepository
	bookings repositories.BookingRepository
	tours    repositories.TourRepository
}

func NewReviewService(reviews repositories.ReviewRepository, bookings repositories.BookingRepository, tours repositories.TourRepository) ReviewService {
	return &reviewService{reviews: reviews, bookings: bookings, tours: tours}
}

// Create only accepts reviews from users holding a confirmed booking of the
// tour, one per user and tour.
func (s *reviewService) Create(ctx context.Context, caller utils.Identity, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.Validationf("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, utils.Validationf("comment is required")
	}
	tourID, err := parseID(req.TourID, "tourId")
	if err != nil {
		return nil, err
	}
	tour, err := s.tours.FindById(ctx, tourID)
	if err != nil {
		return nil, dbError("find tour", err)
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}

	booked, err := s.bookings.HasConfirmedTourBooking(ctx, caller.UserID, tourID)
	if err != nil {
		return nil, dbError("check bookings", err)
	}
	if !booked {
		return nil, utils.ErrReviewNotAllowed
	}
	exists, err := s.reviews.Exists(ctx, caller.UserID, tourID)
	if err != nil {
		return nil, dbError("check reviews", err)
	}
	if exists {
		return nil, utils.ErrReviewDuplicate
	}

	review := &db_models.Review{
		UserID:  caller.UserID,
		TourID:  tourID,
		Rating:  req.Rating,
		Comment: comment,
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrReviewDuplicate
		}
		return nil, dbError("insert review", err)
	}
	return review, nil
}

func (s *reviewService) ListByTour(ctx context.Context, tourID string) ([]db_models.Review, error) {
	if strings.TrimSpace(tourID) == "" {
		return nil, utils.Validationf("tourId is required")
	}
	id, err := parseID(tourID, "tourId")
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByTour(ctx, id)
	if err != nil {
		return nil, dbError("list reviews", err)
	}
	return reviews, nil
}
