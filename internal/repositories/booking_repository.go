package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type BookingKind int

const (
	AnyBooking BookingKind = iota
	TourBookings
	HotelBookings
	GroupBookings
)

// BookingFilter narrows a listing. A nil UserID lists every user's bookings.
type BookingFilter struct {
	UserID *uuid.UUID
	Status *db_models.BookingStatus
	Kind   BookingKind
}

type BookingRepository interface {
	WithTx(tx *gorm.DB) BookingRepository
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]db_models.Booking, error)
	UpdateStatusAndPaid(ctx context.Context, booking *db_models.Booking) error
	// HasConfirmedTourBooking reports whether the user holds a confirmed
	// booking for the tour.
	HasConfirmedTourBooking(ctx context.Context, userID, tourID uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	return &bookingRepository{db: tx}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

func withBookingRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Tour").
		Preload("Tour.Images", orderImages).
		Preload("Hotel").
		Preload("Hotel.Images", orderImages).
		Preload("PaymentPlan")
}

func (r *bookingRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := withBookingRelations(r.db.WithContext(ctx)).First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, f BookingFilter) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	q := withBookingRelations(r.db.WithContext(ctx))
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	switch f.Kind {
	case TourBookings:
		q = q.Where("tour_id IS NOT NULL")
	case HotelBookings:
		q = q.Where("hotel_id IS NOT NULL")
	case GroupBookings:
		q = q.Where("group_booking = ?", true)
	}
	err := q.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) UpdateStatusAndPaid(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Model(&db_models.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"status":      booking.Status,
			"paid_amount": booking.PaidAmount,
		}).Error
}

func (r *bookingRepository) HasConfirmedTourBooking(ctx context.Context, userID, tourID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Booking{}).
		Where("user_id = ? AND tour_id = ? AND status = ?", userID, tourID, db_models.BookingConfirmed).
		Count(&n).Error
	return n > 0, err
}
