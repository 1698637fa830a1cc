package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

func TestTourCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tours.CreateTour(ctx, request_models.TourRequest{Title: "x", Description: "y", Location: "z", Price: ptr(10.0), Duration: 0, MaxPeople: 5})
	assert.ErrorIs(t, err, utils.ErrValidation)

	tour, err := env.tours.CreateTour(ctx, request_models.TourRequest{
		Title: "Alps Hike", Description: "Peaks", Location: "Zermatt, Switzerland",
		Price: ptr(1200.0), Duration: 5, MaxPeople: 12, Featured: true,
	})
	require.NoError(t, err)

	featured, err := env.tours.ListTours(ctx, true)
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	updated, err := env.tours.UpdateTour(ctx, tour.ID.String(), request_models.TourRequest{
		Title: "Alps Hike", Description: "Peaks", Location: "Zermatt, Switzerland",
		Price: ptr(1100.0), Duration: 5, MaxPeople: 12, Featured: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, updated.Price)

	featured, err = env.tours.ListTours(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, featured)

	found, err := env.tours.SearchTours(ctx, request_models.SearchQuery{Query: "ALPS", Location: "zermatt"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = env.tours.GetTour(ctx, "not-an-id")
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
}

func TestDeleteTourRemovesChildrenAndFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)

	url, err := env.files.Save("tours", "pic.jpg", []byte("jpeg"))
	require.NoError(t, err)
	tourID := tour.ID
	require.NoError(t, env.db.Create(&db_models.Image{URL: url, TourID: &tourID}).Error)
	newPlanBooking(t, env, alice, 300) // on a different tour
	_, err = env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 1, TotalPrice: 100,
	})
	require.NoError(t, err)

	require.NoError(t, env.tours.DeleteTour(ctx, tour.ID.String()))

	_, err = env.tours.GetTour(ctx, tour.ID.String())
	assert.ErrorIs(t, err, utils.ErrTourNotFound)
	assert.EqualValues(t, 0, env.count(t, &db_models.Image{}))
	assert.EqualValues(t, 1, env.count(t, &db_models.Booking{}), "bookings of other tours survive")
	assert.EqualValues(t, 1, env.count(t, &db_models.PaymentPlan{}))

	_, statErr := os.Stat(filepath.Join(env.files.Root, "tours", "pic.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHotelValidationAndSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.hotels.CreateHotel(ctx, request_models.HotelRequest{
		Name: "Bad", Description: "d", Location: "l", Price: ptr(10.0), Rating: ptr(6.0),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	h, err := env.hotels.CreateHotel(ctx, request_models.HotelRequest{
		Name: "Canal House", Description: "Quiet rooms", Location: "Amsterdam, Netherlands",
		Price: ptr(210.0), Rating: ptr(4.2), Amenities: []string{"WiFi", " ", "Bikes"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "Bikes"}, []string(h.Amenities))

	cheap, err := env.hotels.SearchHotels(ctx, request_models.SearchQuery{MaxPrice: 100})
	require.NoError(t, err)
	assert.Empty(t, cheap)

	matches, err := env.hotels.SearchHotels(ctx, request_models.SearchQuery{Query: "canal"})
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	require.NoError(t, env.hotels.DeleteHotel(ctx, h.ID.String()))
	assert.ErrorIs(t, env.hotels.DeleteHotel(ctx, h.ID.String()), utils.ErrHotelNotFound)
}
