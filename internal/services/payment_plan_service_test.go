package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

func newPlanBooking(t *testing.T, env *testEnv, caller utils.Identity, total float64) *db_models.Booking {
	t.Helper()
	tour := env.tour(t, 30)
	b, err := env.bookings.CreateGroupBooking(context.Background(), caller, request_models.CreateGroupBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-09-01", GroupSize: 10,
		PaymentOption: "Installments", TotalAmount: total,
	})
	require.NoError(t, err)
	require.NotNil(t, b.PaymentPlan)
	return b
}

func TestPayAllInstallmentsCompletesPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	b := newPlanBooking(t, env, alice, 1000)
	firstDue := b.PaymentPlan.NextDueDate

	plan, err := env.plans.PayInstallment(ctx, alice, b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, plan.PaidInstallments)
	assert.Equal(t, db_models.PlanActive, plan.Status)
	assert.True(t, firstDue.Add(utils.InstallmentPeriod).Equal(plan.NextDueDate))

	_, err = env.plans.PayInstallment(ctx, alice, b.ID.String())
	require.NoError(t, err)
	plan, err = env.plans.PayInstallment(ctx, alice, b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, plan.PaidInstallments)
	assert.Equal(t, db_models.PlanCompleted, plan.Status)

	booking, err := env.bookings.GetBooking(ctx, alice, "tour", b.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, booking.PaidAmount, 1e-9)
	assert.Equal(t, db_models.PlanCompleted, booking.PaymentPlan.Status)

	_, err = env.plans.PayInstallment(ctx, alice, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotActive)

	paid := 0
	for _, k := range env.events.Keys() {
		if k == mq.KeyInstallmentPaid {
			paid++
		}
	}
	assert.Equal(t, 3, paid)
}

func TestPaymentPlanOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	bob := env.user(t, "bob@example.com", db_models.RoleUser)
	b := newPlanBooking(t, env, alice, 900)

	_, err := env.plans.GetPlan(ctx, bob, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	_, err = env.plans.PayInstallment(ctx, bob, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)

	plan, err := env.plans.GetPlan(ctx, alice, b.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 300.0, plan.InstallmentAmount(), 1e-9)

	tour := env.tour(t, 5)
	plain, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 1, TotalPrice: 100,
	})
	require.NoError(t, err)
	_, err = env.plans.GetPlan(ctx, alice, plain.ID.String())
	assert.ErrorIs(t, err, utils.ErrPaymentPlanNotFound)
}

func TestMarkOverdueOnlyTouchesActivePastDuePlans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)

	overdue := newPlanBooking(t, env, alice, 300)
	env.clock.Advance(10 * 24 * time.Hour)
	fresh := newPlanBooking(t, env, alice, 300)

	n, err := env.plans.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "nothing is due yet")

	env.clock.Advance(25 * 24 * time.Hour)
	n, err = env.plans.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	p, err := env.plans.GetPlan(ctx, alice, overdue.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanDefaulted, p.Status)
	p, err = env.plans.GetPlan(ctx, alice, fresh.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanActive, p.Status)

	n, err = env.plans.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "defaulted plans are not touched again")

	_, err = env.plans.PayInstallment(ctx, alice, overdue.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotActive)
	assert.Contains(t, env.events.Keys(), mq.KeyPaymentPlanDefaulted)
}

func TestOverdueSweeperDisabled(t *testing.T) {
	env := newTestEnv(t)
	s := NewOverdueSweeper(env.plans, 0, zapNop())
	s.Start()
	s.Stop()
}

func TestCancellingBookingClosesPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	b := newPlanBooking(t, env, alice, 900)

	updated, err := env.bookings.UpdateGroupBooking(ctx, alice, b.ID.String(),
		request_models.UpdateBookingRequest{Status: ptr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingCancelled, updated.Status)
	require.NotNil(t, updated.PaymentPlan)
	assert.Equal(t, db_models.PlanCancelled, updated.PaymentPlan.Status)

	_, err = env.plans.PayInstallment(ctx, alice, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotActive)

	booking, err := env.bookings.GetBooking(ctx, alice, "tour", b.ID.String())
	require.NoError(t, err)
	assert.Zero(t, booking.PaidAmount)

	env.clock.Advance(90 * 24 * time.Hour)
	n, err := env.plans.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NotContains(t, env.events.Keys(), mq.KeyPaymentPlanDefaulted)
}

func TestPayInstallmentRejectsCancelledBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	b := newPlanBooking(t, env, alice, 900)

	// Status written directly, leaving the plan active.
	env.setStatus(t, b.ID, db_models.BookingCancelled)

	_, err := env.plans.PayInstallment(ctx, alice, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrPlanNotActive)

	env.clock.Advance(90 * 24 * time.Hour)
	n, err := env.plans.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var plan db_models.PaymentPlan
	require.NoError(t, env.db.First(&plan, "booking_id = ?", b.ID).Error)
	assert.Equal(t, db_models.PlanActive, plan.Status)
	assert.Zero(t, plan.PaidInstallments)
}
