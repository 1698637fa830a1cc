package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/metrics"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

type PaymentPlanService interface {
	GetPlan(ctx context.Context, caller utils.Identity, bookingID string) (*db_models.PaymentPlan, error)
	PayInstallment(ctx context.Context, caller utils.Identity, bookingID string) (*db_models.PaymentPlan, error)
	// MarkOverdue defaults every active plan whose due date has passed and
	// returns how many changed.
	MarkOverdue(ctx context.Context) (int64, error)
}

type paymentPlanService struct {
	db        *gorm.DB
	bookings  repositories.BookingRepository
	plans     repositories.PaymentPlanRepository
	publisher mq.EventPublisher
	metrics   *metrics.Metrics
	clock     utils.TimeProvider
	log       *zap.Logger
}

func NewPaymentPlanService(
	db *gorm.DB,
	bookings repositories.BookingRepository,
	plans repositories.PaymentPlanRepository,
	publisher mq.EventPublisher,
	m *metrics.Metrics,
	clock utils.TimeProvider,
	log *zap.Logger,
) PaymentPlanService {
	return &paymentPlanService{
		db:        db,
		bookings:  bookings,
		plans:     plans,
		publisher: publisher,
		metrics:   m,
		clock:     clock,
		log:       log,
	}
}

func (s *paymentPlanService) GetPlan(ctx context.Context, caller utils.Identity, bookingID string) (*db_models.PaymentPlan, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}
	booking, err := s.bookings.FindById(ctx, id)
	if err != nil {
		return nil, dbError("find booking", err)
	}
	if booking == nil || booking.UserID != caller.UserID {
		return nil, utils.ErrBookingNotFound
	}
	if booking.PaymentPlan == nil {
		return nil, utils.ErrPaymentPlanNotFound
	}
	return booking.PaymentPlan, nil
}

func (s *paymentPlanService) PayInstallment(ctx context.Context, caller utils.Identity, bookingID string) (*db_models.PaymentPlan, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}

	var plan *db_models.PaymentPlan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := s.bookings.WithTx(tx)
		booking, err := bookings.FindById(ctx, id)
		if err != nil {
			return dbError("find booking", err)
		}
		if booking == nil || booking.UserID != caller.UserID {
			return utils.ErrBookingNotFound
		}

		plan, err = s.plans.WithTx(tx).FindByBookingIdForUpdate(ctx, id)
		if err != nil {
			return dbError("find payment plan", err)
		}
		if plan == nil {
			return utils.ErrPaymentPlanNotFound
		}
		if plan.Status != db_models.PlanActive || booking.Status == db_models.BookingCancelled {
			return utils.ErrPlanNotActive
		}

		amount := plan.InstallmentAmount()
		plan.PaidInstallments++
		if plan.PaidInstallments >= plan.Installments {
			plan.Status = db_models.PlanCompleted
			booking.PaidAmount = booking.TotalAmount
		} else {
			plan.NextDueDate = plan.NextDueDate.Add(utils.InstallmentPeriod)
			booking.PaidAmount = math.Min(booking.PaidAmount+amount, booking.TotalAmount)
		}

		if err := s.plans.WithTx(tx).Save(ctx, plan); err != nil {
			return dbError("save payment plan", err)
		}
		if err := bookings.UpdateStatusAndPaid(ctx, booking); err != nil {
			return dbError("update booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.InstallmentPaid()
	s.publish(ctx, mq.KeyInstallmentPaid, plan)
	return plan, nil
}

func (s *paymentPlanService) MarkOverdue(ctx context.Context) (int64, error) {
	changed, err := s.plans.MarkOverdueDefaulted(ctx, s.clock.Now())
	if err != nil {
		return 0, dbError("mark overdue plans", err)
	}
	for i := range changed {
		s.publish(ctx, mq.KeyPaymentPlanDefaulted, &changed[i])
	}
	n := int64(len(changed))
	s.metrics.PlansDefaulted(n)
	if n > 0 {
		s.log.Info("payment plans defaulted", zap.Int64("count", n))
	}
	return n, nil
}

func (s *paymentPlanService) publish(ctx context.Context, key string, p *db_models.PaymentPlan) {
	ev := mq.PaymentPlanEvent{
		PlanID:           p.ID.String(),
		BookingID:        p.BookingID.String(),
		PaidInstallments: p.PaidInstallments,
		Installments:     p.Installments,
		Status:           string(p.Status),
		OccurredAt:       s.clock.Now().UnixMilli(),
	}
	if err := s.publisher.PublishJSON(ctx, key, ev); err != nil {
		s.log.Warn("publish payment plan event", zap.String("key", key), zap.Error(err))
	}
}
