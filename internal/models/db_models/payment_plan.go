package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentPlanStatus string

const (
	PlanActive    PaymentPlanStatus = "active"
	PlanCompleted PaymentPlanStatus = "completed"
	PlanDefaulted PaymentPlanStatus = "defaulted"
	// PlanCancelled follows its booking into CANCELLED.
	PlanCancelled PaymentPlanStatus = "cancelled"
)

const (
	DefaultInstallments = 3
	MinInstallments     = 3
	MaxInstallments     = 6
)

type PaymentPlan struct {
	BaseModel
	BookingID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	TotalAmount      float64           `gorm:"not null"`
	Installments     int               `gorm:"not null;check:installments >= 1"`
	PaidInstallments int               `gorm:"not null;default:0;check:paid_installments >= 0"`
	NextDueDate      time.Time         `gorm:"not null;index"`
	Status           PaymentPlanStatus `gorm:"type:varchar(16);not null;default:'active';index"`
}

// InstallmentAmount is the amount due for the next installment; the last one
// absorbs rounding so the plan always sums to TotalAmount.
func (p *PaymentPlan) InstallmentAmount() float64 {
	if p.Installments <= 0 || p.PaidInstallments >= p.Installments {
		return 0
	}
	regular := p.TotalAmount / float64(p.Installments)
	if p.PaidInstallments == p.Installments-1 {
		return p.TotalAmount - regular*float64(p.Installments-1)
	}
	return regular
}

func (p *PaymentPlan) RemainingInstallments() int {
	return p.Installments - p.PaidInstallments
}
