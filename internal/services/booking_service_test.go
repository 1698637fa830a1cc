package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/mq"
	"voyago/pkg/utils"
)

func TestCreateTourBookingCapacity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)

	_, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 11, TotalPrice: 5500,
	})
	require.ErrorIs(t, err, utils.ErrCapacityExceeded)
	assert.EqualValues(t, 0, env.count(t, &db_models.Booking{}))
	assert.Empty(t, env.events.Events())

	b, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 10, TotalPrice: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingPending, b.Status)
	assert.Equal(t, 5000.0, b.TotalAmount)
	assert.Equal(t, 0.0, b.PaidAmount)
	assert.Equal(t, alice.UserID, b.UserID)
	require.NotNil(t, b.Tour)
	assert.Equal(t, tour.Title, b.Tour.Title)
	assert.Nil(t, b.PaymentPlan)
	assert.Equal(t, []string{mq.KeyBookingCreated}, env.events.Keys())
}

func TestCreateTourBookingValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)

	cases := []struct {
		name string
		req  request_models.CreateTourBookingRequest
		want error
	}{
		{"bad tour id", request_models.CreateTourBookingRequest{TourID: "nope", StartDate: "2025-07-01", NumberOfPeople: 1, TotalPrice: 1}, utils.ErrValidation},
		{"bad date", request_models.CreateTourBookingRequest{TourID: tour.ID.String(), StartDate: "July", NumberOfPeople: 1, TotalPrice: 1}, utils.ErrValidation},
		{"zero price", request_models.CreateTourBookingRequest{TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 1, TotalPrice: 0}, utils.ErrValidation},
		{"unknown tour", request_models.CreateTourBookingRequest{TourID: "6f1c1f8e-3c1a-4f55-9a55-2a0d1b7b1111", StartDate: "2025-07-01", NumberOfPeople: 1, TotalPrice: 1}, utils.ErrTourNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.bookings.CreateTourBooking(ctx, alice, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.EqualValues(t, 0, env.count(t, &db_models.Booking{}))
}

func TestCreateGroupBookingWithInstallments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 20)

	b, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID:        tour.ID.String(),
		StartDate:     "2025-08-01",
		EndDate:       "2025-08-05",
		GroupSize:     12,
		GroupType:     "corporate",
		ContactPerson: "Alice",
		PaymentOption: "Installments",
		TotalAmount:   6000,
	})
	require.NoError(t, err)
	assert.True(t, b.GroupBooking)
	require.NotNil(t, b.GroupSize)
	assert.Equal(t, 12, *b.GroupSize)
	assert.Equal(t, 12, b.NumberOfGuests)
	require.NotNil(t, b.EndDate)

	require.NotNil(t, b.PaymentPlan)
	plan := b.PaymentPlan
	assert.Equal(t, db_models.DefaultInstallments, plan.Installments)
	assert.Equal(t, 0, plan.PaidInstallments)
	assert.Equal(t, db_models.PlanActive, plan.Status)
	assert.Equal(t, 6000.0, plan.TotalAmount)
	assert.True(t, env.clock.Now().Add(utils.InstallmentPeriod).Equal(plan.NextDueDate), "due in 30 days, got %s", plan.NextDueDate)
	assert.EqualValues(t, 1, env.count(t, &db_models.PaymentPlan{}))
}

func TestCreateGroupBookingRejectsBadInstallments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 20)

	for _, n := range []int{2, 7} {
		_, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
			TourID: tour.ID.String(), StartDate: "2025-08-01", GroupSize: 5,
			PaymentOption: "Installments", Installments: ptr(n), TotalAmount: 100,
		})
		assert.ErrorIs(t, err, utils.ErrValidation, "installments=%d", n)
	}
	assert.EqualValues(t, 0, env.count(t, &db_models.Booking{}))
	assert.EqualValues(t, 0, env.count(t, &db_models.PaymentPlan{}))

	b, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-08-01", GroupSize: 5,
		PaymentOption: "installments", Installments: ptr(6), TotalAmount: 600,
	})
	require.NoError(t, err)
	require.NotNil(t, b.PaymentPlan)
	assert.Equal(t, 6, b.PaymentPlan.Installments)
}

func TestCreateGroupBookingTargets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 8)
	hotel := env.hotel(t)

	_, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID: tour.ID.String(), HotelID: hotel.ID.String(), StartDate: "2025-08-01", GroupSize: 2,
	})
	assert.ErrorIs(t, err, utils.ErrAmbiguousTarget)

	_, err = env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		StartDate: "2025-08-01", GroupSize: 2,
	})
	assert.ErrorIs(t, err, utils.ErrAmbiguousTarget)

	_, err = env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-08-01", GroupSize: 9,
	})
	assert.ErrorIs(t, err, utils.ErrCapacityExceeded)

	b, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		HotelID: hotel.ID.String(), StartDate: "2025-08-01", EndDate: "2025-08-03", GroupSize: 40, TotalAmount: 900,
	})
	require.NoError(t, err, "hotels have no headcount limit")
	assert.True(t, b.IsHotelBooking())
	assert.Nil(t, b.PaymentPlan, "no plan unless installments were chosen")
	assert.EqualValues(t, 1, env.count(t, &db_models.Booking{}))
}

func TestCreateHotelBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	hotel := env.hotel(t)

	_, err := env.bookings.CreateHotelBooking(ctx, alice, request_models.CreateHotelBookingRequest{
		HotelID: hotel.ID.String(), CheckIn: "2025-05-10", CheckOut: "2025-05-08", Guests: 2, TotalPrice: ptr(300.0),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.bookings.CreateHotelBooking(ctx, alice, request_models.CreateHotelBookingRequest{
		HotelID: "6f1c1f8e-3c1a-4f55-9a55-2a0d1b7b1111", CheckIn: "2025-05-10", CheckOut: "2025-05-12", Guests: 2, TotalPrice: ptr(300.0),
	})
	assert.ErrorIs(t, err, utils.ErrHotelNotFound)

	b, err := env.bookings.CreateHotelBooking(ctx, alice, request_models.CreateHotelBookingRequest{
		HotelID: hotel.ID.String(), CheckIn: "2025-05-10", CheckOut: "2025-05-12", Guests: 2, TotalPrice: ptr(360.0),
	})
	require.NoError(t, err)
	require.NotNil(t, b.Hotel)
	assert.Equal(t, "Harbour Inn", b.Hotel.Name)
	require.NotNil(t, b.EndDate)
	assert.Equal(t, 2, b.NumberOfGuests)

	hotels, err := env.bookings.ListHotelBookings(ctx, alice, "")
	require.NoError(t, err)
	assert.Len(t, hotels, 1)

	got, err := env.bookings.GetBooking(ctx, alice, "hotel", b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = env.bookings.GetBooking(ctx, alice, "tour", b.ID.String())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)

	_, err = env.bookings.GetBooking(ctx, alice, "cruise", b.ID.String())
	assert.ErrorIs(t, err, utils.ErrInvalidBookingType)
}

func TestBookingsAreIsolatedPerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	bob := env.user(t, "bob@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)

	mine, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)
	_, err = env.bookings.CreateTourBooking(ctx, bob, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-02", NumberOfPeople: 3, TotalPrice: 1500,
	})
	require.NoError(t, err)

	for _, list := range []func() ([]db_models.Booking, error){
		func() ([]db_models.Booking, error) { return env.bookings.ListBookings(ctx, alice, "") },
		func() ([]db_models.Booking, error) { return env.bookings.ListUserBookings(ctx, alice, "") },
	} {
		got, err := list()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, mine.ID, got[0].ID)
	}

	_, err = env.bookings.GetBooking(ctx, bob, "tour", mine.ID.String())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)

	_, err = env.bookings.ListUserBookings(ctx, alice, "weird")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	confirmed, err := env.bookings.ListUserBookings(ctx, alice, "confirmed")
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}

func TestUpdateBookingTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	bob := env.user(t, "bob@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)

	b, err := env.bookings.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-08-01", GroupSize: 4, TotalAmount: 800,
	})
	require.NoError(t, err)
	id := b.ID.String()

	_, err = env.bookings.UpdateGroupBooking(ctx, bob, id, request_models.UpdateBookingRequest{Status: ptr("CONFIRMED")})
	assert.ErrorIs(t, err, utils.ErrBookingNotFound, "non-owners see not found")

	_, err = env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{Status: ptr("SHIPPED")})
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{PaidAmount: ptr(900.0)})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)

	updated, err := env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{
		Status: ptr("confirmed"), PaidAmount: ptr(200.0),
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingConfirmed, updated.Status)
	assert.Equal(t, 200.0, updated.PaidAmount)

	_, err = env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{Status: ptr("PENDING")})
	assert.ErrorIs(t, err, utils.ErrInvalidStatusTransition)

	same, err := env.bookings.UpdateGroupBooking(ctx, alice, id, request_models.UpdateBookingRequest{Status: ptr("CONFIRMED")})
	require.NoError(t, err, "resubmitting the current status is allowed")
	assert.Equal(t, db_models.BookingConfirmed, same.Status)

	assert.Equal(t, []string{mq.KeyBookingCreated, mq.KeyBookingUpdated, mq.KeyBookingUpdated}, env.events.Keys())
}

func TestAdminBookingAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	manager := env.user(t, "manager@example.com", db_models.RoleManager)
	tour := env.tour(t, 10)

	b, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)

	_, err = env.bookings.AdminListBookings(ctx, alice, "")
	assert.ErrorIs(t, err, utils.ErrForbidden)
	_, err = env.bookings.AdminUpdateBooking(ctx, alice, b.ID.String(), request_models.UpdateBookingRequest{Status: ptr("CANCELLED")})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	all, err := env.bookings.AdminListBookings(ctx, manager, "pending")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	cancelled, err := env.bookings.AdminUpdateBooking(ctx, manager, b.ID.String(), request_models.UpdateBookingRequest{Status: ptr("CANCELLED")})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingCancelled, cancelled.Status)
}

// failingPlans fails every plan insert made inside a transaction.
type failingPlans struct {
	repositories.PaymentPlanRepository
}

func (f failingPlans) WithTx(tx *gorm.DB) repositories.PaymentPlanRepository {
	return failingPlans{f.PaymentPlanRepository.WithTx(tx)}
}

func (failingPlans) Insert(context.Context, *db_models.PaymentPlan) error {
	return errors.New("disk full")
}

func TestCreateGroupBookingRollsBackWhenPlanInsertFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 20)

	svc := NewBookingService(env.db,
		repositories.NewBookingRepository(env.db),
		failingPlans{repositories.NewPaymentPlanRepository(env.db)},
		repositories.NewTourRepository(env.db),
		repositories.NewHotelRepository(env.db),
		env.events, env.metrics, env.clock, zapNop())

	_, err := svc.CreateGroupBooking(ctx, alice, request_models.CreateGroupBookingRequest{
		TourID:        tour.ID.String(),
		StartDate:     "2025-08-01",
		GroupSize:     8,
		PaymentOption: "Installments",
		TotalAmount:   2400,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	assert.EqualValues(t, 0, env.count(t, &db_models.Booking{}))
	assert.EqualValues(t, 0, env.count(t, &db_models.PaymentPlan{}))
	assert.Empty(t, env.events.Events())
}
