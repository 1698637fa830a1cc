package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type PaymentPlanRepository interface {
	WithTx(tx *gorm.DB) PaymentPlanRepository
	Insert(ctx context.Context, plan *db_models.PaymentPlan) error
	FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.PaymentPlan, error)
	FindByBookingIdForUpdate(ctx context.Context, bookingID uuid.UUID) (*db_models.PaymentPlan, error)
	Save(ctx context.Context, plan *db_models.PaymentPlan) error
	// CancelForBooking closes the booking's plan if it is still active.
	CancelForBooking(ctx context.Context, bookingID uuid.UUID, now time.Time) (int64, error)
	// MarkOverdueDefaulted flips every active plan due before now to
	// defaulted and returns the plans it changed. Plans of cancelled
	// bookings are skipped.
	MarkOverdueDefaulted(ctx context.Context, now time.Time) ([]db_models.PaymentPlan, error)
}

type paymentPlanRepository struct {
	db *gorm.DB
}

func NewPaymentPlanRepository(db *gorm.DB) PaymentPlanRepository {
	return &paymentPlanRepository{db: db}
}

func (r *paymentPlanRepository) WithTx(tx *gorm.DB) PaymentPlanRepository {
	return &paymentPlanRepository{db: tx}
}

func (r *paymentPlanRepository) Insert(ctx context.Context, plan *db_models.PaymentPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *paymentPlanRepository) FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.PaymentPlan, error) {
	var plan db_models.PaymentPlan
	if err := r.db.WithContext(ctx).First(&plan, "booking_id = ?", bookingID).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &plan, nil
}

func (r *paymentPlanRepository) FindByBookingIdForUpdate(ctx context.Context, bookingID uuid.UUID) (*db_models.PaymentPlan, error) {
	var plan db_models.PaymentPlan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&plan, "booking_id = ?", bookingID).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &plan, nil
}

func (r *paymentPlanRepository) Save(ctx context.Context, plan *db_models.PaymentPlan) error {
	return r.db.WithContext(ctx).Model(plan).Select(
		"paid_installments", "next_due_date", "status", "updated_at",
	).Updates(plan).Error
}

func (r *paymentPlanRepository) CancelForBooking(ctx context.Context, bookingID uuid.UUID, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&db_models.PaymentPlan{}).
		Where("booking_id = ? AND status = ?", bookingID, db_models.PlanActive).
		Updates(map[string]interface{}{
			"status":     db_models.PlanCancelled,
			"updated_at": now.UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (r *paymentPlanRepository) MarkOverdueDefaulted(ctx context.Context, now time.Time) ([]db_models.PaymentPlan, error) {
	var plans []db_models.PaymentPlan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND next_due_date < ?", db_models.PlanActive, now).
			Where("booking_id NOT IN (?)", tx.Model(&db_models.Booking{}).
				Select("id").
				Where("status = ?", db_models.BookingCancelled)).
			Find(&plans).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, 0, len(plans))
		for i := range plans {
			ids = append(ids, plans[i].ID)
			plans[i].Status = db_models.PlanDefaulted
		}
		return tx.Model(&db_models.PaymentPlan{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"status":     db_models.PlanDefaulted,
				"updated_at": now.UnixMilli(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}
