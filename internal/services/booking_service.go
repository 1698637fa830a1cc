package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/metrics"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

const paymentOptionInstallments = "installments"

type BookingService interface {
	CreateTourBooking(ctx context.Context, caller utils.Identity, req request_models.CreateTourBookingRequest) (*db_models.Booking, error)
	CreateHotelBooking(ctx context.Context, caller utils.Identity, req request_models.CreateHotelBookingRequest) (*db_models.Booking, error)
	CreateGroupBooking(ctx context.Context, caller utils.Identity, req request_models.CreateGroupBookingRequest) (*db_models.Booking, error)

	ListBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error)
	ListUserBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error)
	ListGroupBookings(ctx context.Context, caller utils.Identity) ([]db_models.Booking, error)
	ListHotelBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error)
	GetBooking(ctx context.Context, caller utils.Identity, kind, id string) (*db_models.Booking, error)

	UpdateGroupBooking(ctx context.Context, caller utils.Identity, id string, req request_models.UpdateBookingRequest) (*db_models.Booking, error)

	AdminListBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error)
	AdminUpdateBooking(ctx context.Context, caller utils.Identity, id string, req request_models.UpdateBookingRequest) (*db_models.Booking, error)
}

// BookingAdminRoles may list and modify any booking.
var BookingAdminRoles = []string{string(db_models.RoleAdmin), string(db_models.RoleManager)}

type bookingService struct {
	db        *gorm.DB
	bookings  repositories.BookingRepository
	plans     repositories.PaymentPlanRepository
	tours     repositories.TourRepository
	hotels    repositories.HotelRepository
	checker   AvailabilityChecker
	publisher mq.EventPublisher
	metrics   *metrics.Metrics
	clock     utils.TimeProvider
	log       *zap.Logger
}

func NewBookingService(
	db *gorm.DB,
	bookings repositories.BookingRepository,
	plans repositories.PaymentPlanRepository,
	tours repositories.TourRepository,
	hotels repositories.HotelRepository,
	publisher mq.EventPublisher,
	m *metrics.Metrics,
	clock utils.TimeProvider,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		db:        db,
		bookings:  bookings,
		plans:     plans,
		tours:     tours,
		hotels:    hotels,
		publisher: publisher,
		metrics:   m,
		clock:     clock,
		log:       log,
	}
}

// bookingDraft is a validated create request; exactly one of tourID and
// hotelID is set.
type bookingDraft struct {
	kind         string
	tourID       *uuid.UUID
	hotelID      *uuid.UUID
	start        time.Time
	end          *time.Time
	headcount    int
	total        float64
	group        bool
	groupType    string
	contact      string
	requests     string
	installments int // 0 means no payment plan
}

func (s *bookingService) CreateTourBooking(ctx context.Context, caller utils.Identity, req request_models.CreateTourBookingRequest) (*db_models.Booking, error) {
	tourID, err := parseID(req.TourID, "tourId")
	if err != nil {
		return nil, err
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.Validationf("startDate must be a date")
	}
	if req.NumberOfPeople < 1 {
		return nil, utils.Validationf("numberOfPeople must be at least 1")
	}
	if req.TotalPrice <= 0 {
		return nil, utils.Validationf("totalPrice must be positive")
	}
	return s.create(ctx, caller, bookingDraft{
		kind:      "tour",
		tourID:    &tourID,
		start:     start,
		headcount: req.NumberOfPeople,
		total:     req.TotalPrice,
	})
}

func (s *bookingService) CreateHotelBooking(ctx context.Context, caller utils.Identity, req request_models.CreateHotelBookingRequest) (*db_models.Booking, error) {
	hotelID, err := parseID(req.HotelID, "hotelId")
	if err != nil {
		return nil, err
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, utils.Validationf("checkIn must be a date")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, utils.Validationf("checkOut must be a date")
	}
	if checkOut.Before(checkIn) {
		return nil, utils.Validationf("checkOut must not be before checkIn")
	}
	if req.Guests < 1 {
		return nil, utils.Validationf("guests must be at least 1")
	}
	total := 0.0
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	}
	if total < 0 {
		return nil, utils.Validationf("totalPrice must not be negative")
	}
	return s.create(ctx, caller, bookingDraft{
		kind:      "hotel",
		hotelID:   &hotelID,
		start:     checkIn,
		end:       &checkOut,
		headcount: req.Guests,
		total:     total,
	})
}

func (s *bookingService) CreateGroupBooking(ctx context.Context, caller utils.Identity, req request_models.CreateGroupBookingRequest) (*db_models.Booking, error) {
	hasTour, hasHotel := strings.TrimSpace(req.TourID) != "", strings.TrimSpace(req.HotelID) != ""
	if hasTour == hasHotel {
		return nil, utils.ErrAmbiguousTarget
	}
	draft := bookingDraft{
		kind:      "group",
		headcount: req.GroupSize,
		total:     req.TotalAmount,
		group:     true,
		groupType: req.GroupType,
		contact:   req.ContactPerson,
		requests:  req.SpecialRequirements,
	}
	if hasTour {
		id, err := parseID(req.TourID, "tourId")
		if err != nil {
			return nil, err
		}
		draft.tourID = &id
	} else {
		id, err := parseID(req.HotelID, "hotelId")
		if err != nil {
			return nil, err
		}
		draft.hotelID = &id
	}
	if req.GroupSize < 1 {
		return nil, utils.Validationf("groupSize must be at least 1")
	}
	if req.TotalAmount < 0 {
		return nil, utils.Validationf("totalAmount must not be negative")
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.Validationf("startDate must be a date")
	}
	draft.start = start
	if strings.TrimSpace(req.EndDate) != "" {
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, utils.Validationf("endDate must be a date")
		}
		if end.Before(start) {
			return nil, utils.Validationf("endDate must not be before startDate")
		}
		draft.end = &end
	}

	if strings.EqualFold(strings.TrimSpace(req.PaymentOption), paymentOptionInstallments) {
		n := db_models.DefaultInstallments
		if req.Installments != nil {
			n = *req.Installments
		}
		if n < db_models.MinInstallments || n > db_models.MaxInstallments {
			return nil, utils.Validationf("installments must be between %d and %d",
				db_models.MinInstallments, db_models.MaxInstallments)
		}
		draft.installments = n
	}
	return s.create(ctx, caller, draft)
}

// create runs availability, the booking insert and the optional payment plan
// in one transaction. The tour row is locked for the duration so concurrent
// requests against the same tour are checked one after another.
func (s *bookingService) create(ctx context.Context, caller utils.Identity, d bookingDraft) (*db_models.Booking, error) {
	now := s.clock.Now()
	booking := &db_models.Booking{
		UserID:          caller.UserID,
		TourID:          d.tourID,
		HotelID:         d.hotelID,
		StartDate:       d.start,
		EndDate:         d.end,
		NumberOfGuests:  d.headcount,
		Status:          db_models.BookingPending,
		TotalAmount:     d.total,
		PaidAmount:      0,
		GroupBooking:    d.group,
		GroupType:       d.groupType,
		ContactPerson:   d.contact,
		SpecialRequests: d.requests,
	}
	if d.group {
		size := d.headcount
		booking.GroupSize = &size
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if d.tourID != nil {
			if _, err := s.checker.CheckTour(ctx, s.tours.WithTx(tx), *d.tourID, d.headcount); err != nil {
				return err
			}
		} else {
			if _, err := s.checker.CheckHotel(ctx, s.hotels.WithTx(tx), *d.hotelID); err != nil {
				return err
			}
		}

		if err := s.bookings.WithTx(tx).Insert(ctx, booking); err != nil {
			return dbError("insert booking", err)
		}

		if d.installments > 0 {
			plan := &db_models.PaymentPlan{
				BookingID:        booking.ID,
				TotalAmount:      booking.TotalAmount,
				Installments:     d.installments,
				PaidInstallments: 0,
				NextDueDate:      now.Add(utils.InstallmentPeriod),
				Status:           db_models.PlanActive,
			}
			if err := s.plans.WithTx(tx).Insert(ctx, plan); err != nil {
				return dbError("insert payment plan", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrCapacityExceeded) {
			s.metrics.CapacityRejected()
		}
		return nil, err
	}

	s.metrics.BookingCreated(d.kind)
	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.String("kind", d.kind),
		zap.Int("installments", d.installments))

	created, err := s.bookings.FindById(ctx, booking.ID)
	if err != nil || created == nil {
		return nil, dbError("reload booking", fmt.Errorf("booking %s: %v", booking.ID, err))
	}
	s.publish(ctx, mq.KeyBookingCreated, created)
	return created, nil
}

func parseStatusFilter(status string) (*db_models.BookingStatus, error) {
	if strings.TrimSpace(status) == "" {
		return nil, nil
	}
	st, ok := db_models.ParseBookingStatus(status)
	if !ok {
		return nil, utils.ErrInvalidStatus
	}
	return &st, nil
}

func (s *bookingService) list(ctx context.Context, f repositories.BookingFilter, status string) ([]db_models.Booking, error) {
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}
	f.Status = st
	bookings, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, dbError("list bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) ListBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error) {
	return s.list(ctx, repositories.BookingFilter{UserID: &caller.UserID, Kind: repositories.TourBookings}, status)
}

func (s *bookingService) ListUserBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error) {
	return s.list(ctx, repositories.BookingFilter{UserID: &caller.UserID}, status)
}

func (s *bookingService) ListGroupBookings(ctx context.Context, caller utils.Identity) ([]db_models.Booking, error) {
	return s.list(ctx, repositories.BookingFilter{UserID: &caller.UserID, Kind: repositories.GroupBookings}, "")
}

func (s *bookingService) ListHotelBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error) {
	return s.list(ctx, repositories.BookingFilter{UserID: &caller.UserID, Kind: repositories.HotelBookings}, status)
}

func (s *bookingService) AdminListBookings(ctx context.Context, caller utils.Identity, status string) ([]db_models.Booking, error) {
	if !caller.HasRole(BookingAdminRoles...) {
		return nil, utils.ErrForbidden
	}
	return s.list(ctx, repositories.BookingFilter{}, status)
}

// findOwned hides bookings of other users behind ErrBookingNotFound.
func (s *bookingService) findOwned(ctx context.Context, caller utils.Identity, id string) (*db_models.Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}
	booking, err := s.bookings.FindById(ctx, bookingID)
	if err != nil {
		return nil, dbError("find booking", err)
	}
	if booking == nil || booking.UserID != caller.UserID {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, caller utils.Identity, kind, id string) (*db_models.Booking, error) {
	kind = strings.ToLower(kind)
	if kind != "tour" && kind != "hotel" {
		return nil, utils.ErrInvalidBookingType
	}
	booking, err := s.findOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if (kind == "tour" && !booking.IsTourBooking()) || (kind == "hotel" && !booking.IsHotelBooking()) {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) UpdateGroupBooking(ctx context.Context, caller utils.Identity, id string, req request_models.UpdateBookingRequest) (*db_models.Booking, error) {
	booking, err := s.findOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, booking, req)
}

func (s *bookingService) AdminUpdateBooking(ctx context.Context, caller utils.Identity, id string, req request_models.UpdateBookingRequest) (*db_models.Booking, error) {
	if !caller.HasRole(BookingAdminRoles...) {
		return nil, utils.ErrForbidden
	}
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}
	booking, err := s.bookings.FindById(ctx, bookingID)
	if err != nil {
		return nil, dbError("find booking", err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return s.update(ctx, booking, req)
}

// ApplyBookingUpdate validates req against the booking's current state and
// applies it in memory.
func ApplyBookingUpdate(b *db_models.Booking, req request_models.UpdateBookingRequest) error {
	if req.Status == nil && req.PaidAmount == nil {
		return utils.Validationf("status or paidAmount is required")
	}
	if req.Status != nil {
		next, ok := db_models.ParseBookingStatus(*req.Status)
		if !ok {
			return utils.ErrInvalidStatus
		}
		if next != b.Status && !b.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", utils.ErrInvalidStatusTransition, b.Status, next)
		}
		b.Status = next
	}
	if req.PaidAmount != nil {
		paid := *req.PaidAmount
		if paid < 0 || paid > b.TotalAmount {
			return utils.Validationf("paidAmount must be between 0 and %.2f", b.TotalAmount)
		}
		b.PaidAmount = paid
	}
	return nil
}

// update persists the change; cancelling also closes an active payment plan
// in the same transaction so it can be neither paid nor defaulted later.
func (s *bookingService) update(ctx context.Context, booking *db_models.Booking, req request_models.UpdateBookingRequest) (*db_models.Booking, error) {
	previous := booking.Status
	if err := ApplyBookingUpdate(booking, req); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.bookings.WithTx(tx).UpdateStatusAndPaid(ctx, booking); err != nil {
			return dbError("update booking", err)
		}
		if booking.Status == db_models.BookingCancelled && previous != db_models.BookingCancelled {
			if _, err := s.plans.WithTx(tx).CancelForBooking(ctx, booking.ID, s.clock.Now()); err != nil {
				return dbError("cancel payment plan", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated, err := s.bookings.FindById(ctx, booking.ID)
	if err != nil || updated == nil {
		return nil, dbError("reload booking", fmt.Errorf("booking %s: %v", booking.ID, err))
	}
	s.publish(ctx, mq.KeyBookingUpdated, updated)
	return updated, nil
}

// publish never fails the request; the booking is already committed.
func (s *bookingService) publish(ctx context.Context, key string, b *db_models.Booking) {
	ev := mq.BookingEvent{
		BookingID:   b.ID.String(),
		UserID:      b.UserID.String(),
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		PaidAmount:  b.PaidAmount,
		Group:       b.GroupBooking,
		OccurredAt:  s.clock.Now().UnixMilli(),
	}
	if b.TourID != nil {
		ev.TourID = b.TourID.String()
	}
	if b.HotelID != nil {
		ev.HotelID = b.HotelID.String()
	}
	if err := s.publisher.PublishJSON(ctx, key, ev); err != nil {
		s.log.Warn("publish booking event",
			zap.String("key", key),
			zap.String("booking_id", ev.BookingID),
			zap.Error(err))
	}
}
