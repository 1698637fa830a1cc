package services

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// AvailabilityChecker confirms a booking target exists and, for tours, that
// the requested headcount fits. It reads through whatever repositories it is
// handed, so inside a transaction the tour row stays locked until commit.
type AvailabilityChecker struct{}

func (AvailabilityChecker) CheckTour(ctx context.Context, tours repositories.TourRepository, tourID uuid.UUID, people int) (*db_models.Tour, error) {
	tour, err := tours.FindByIdForUpdate(ctx, tourID)
	if err != nil {
		return nil, dbError("find tour", err)
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	if people > tour.MaxPeople {
		return nil, utils.ErrCapacityExceeded
	}
	return tour, nil
}

func (AvailabilityChecker) CheckHotel(ctx context.Context, hotels repositories.HotelRepository, hotelID uuid.UUID) (*db_models.Hotel, error) {
	hotel, err := hotels.FindById(ctx, hotelID)
	if err != nil {
		return nil, dbError("find hotel", err)
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}
	return hotel, nil
}
