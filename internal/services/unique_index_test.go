package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// The wrappers below hide existing rows from the pre-insert lookup, the way a
// concurrent request that passed the same check would see them.

type staleWishlist struct{ repositories.WishlistRepository }

func (staleWishlist) FindByTarget(context.Context, uuid.UUID, *uuid.UUID, *uuid.UUID) (*db_models.WishlistItem, error) {
	return nil, nil
}

type staleReviews struct{ repositories.ReviewRepository }

func (staleReviews) Exists(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type staleAccounts struct{ repositories.AccountRepository }

func (staleAccounts) FindByEmail(context.Context, string) (*db_models.User, error) {
	return nil, nil
}

func TestWishlistUniqueIndexMapsToDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)
	svc := NewWishlistService(staleWishlist{repositories.NewWishlistRepository(env.db)},
		repositories.NewTourRepository(env.db), repositories.NewHotelRepository(env.db))

	_, err := svc.Add(ctx, alice, request_models.WishlistRequest{TourID: tour.ID.String()})
	require.NoError(t, err)
	_, err = svc.Add(ctx, alice, request_models.WishlistRequest{TourID: tour.ID.String()})
	assert.ErrorIs(t, err, utils.ErrWishlistDuplicate)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)

	var n int64
	require.NoError(t, env.db.Model(&db_models.WishlistItem{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestReviewUniqueIndexMapsToDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice@example.com", db_models.RoleUser)
	tour := env.tour(t, 10)
	b, err := env.bookings.CreateTourBooking(ctx, alice, request_models.CreateTourBookingRequest{
		TourID: tour.ID.String(), StartDate: "2025-07-01", NumberOfPeople: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)
	env.setStatus(t, b.ID, db_models.BookingConfirmed)

	svc := NewReviewService(staleReviews{repositories.NewReviewRepository(env.db)},
		repositories.NewBookingRepository(env.db), repositories.NewTourRepository(env.db))
	req := request_models.CreateReviewRequest{TourID: tour.ID.String(), Rating: 4, Comment: "Nice"}

	_, err = svc.Create(ctx, alice, req)
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, req)
	assert.ErrorIs(t, err, utils.ErrReviewDuplicate)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
}

func TestRegisterUniqueIndexMapsToEmailTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAccountService(staleAccounts{repositories.NewAccountRepository(env.db)},
		utils.NewTokenManager("test-secret", time.Hour), memcache.NewRevokedTokens(), zapNop())

	_, err := svc.Register(ctx, request_models.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, request_models.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
}
