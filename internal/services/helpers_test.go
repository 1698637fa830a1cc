package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/metrics"
	"voyago/pkg/mq"
	"voyago/pkg/storage"
	"voyago/pkg/utils"
)

type testEnv struct {
	db        *gorm.DB
	clock     *utils.FixedTimeProvider
	events    *mq.Recorder
	metrics   *metrics.Metrics
	files     *storage.LocalStore
	bookings  BookingService
	plans     PaymentPlanService
	accounts  AccountServiceInterface
	tours     TourService
	hotels    HotelService
	wishlist  WishlistService
	prefs     PreferencesService
	reviews   ReviewService
	marketing MarketingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard, TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(db_models.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := zap.NewNop()
	env := &testEnv{
		db:      db,
		clock:   &utils.FixedTimeProvider{T: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
		events:  &mq.Recorder{},
		metrics: metrics.New("test"),
		files:   storage.NewLocalStore(t.TempDir(), "/uploads"),
	}

	bookingRepo := repositories.NewBookingRepository(db)
	planRepo := repositories.NewPaymentPlanRepository(db)
	tourRepo := repositories.NewTourRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)

	env.bookings = NewBookingService(db, bookingRepo, planRepo, tourRepo, hotelRepo, env.events, env.metrics, env.clock, log)
	env.plans = NewPaymentPlanService(db, bookingRepo, planRepo, env.events, env.metrics, env.clock, log)
	env.accounts = NewAccountService(repositories.NewAccountRepository(db),
		utils.NewTokenManager("test-secret", time.Hour), memcache.NewRevokedTokens(), log)
	env.tours = NewTourService(tourRepo, env.files, log)
	env.hotels = NewHotelService(hotelRepo, env.files, log)
	env.wishlist = NewWishlistService(repositories.NewWishlistRepository(db), tourRepo, hotelRepo)
	env.prefs = NewPreferencesService(repositories.NewPreferencesRepository(db))
	env.reviews = NewReviewService(repositories.NewReviewRepository(db), bookingRepo, tourRepo)
	env.marketing = NewMarketingService(repositories.NewMarketingRepository(db), env.events, env.clock, log)
	return env
}

func (e *testEnv) user(t *testing.T, email string, role db_models.Role) utils.Identity {
	t.Helper()
	u := &db_models.User{Name: email, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, e.db.Create(u).Error)
	return utils.Identity{UserID: u.ID, Email: email, Role: string(role)}
}

func (e *testEnv) tour(t *testing.T, maxPeople int) *db_models.Tour {
	t.Helper()
	tour := &db_models.Tour{
		Title: "Kyoto Temples", Description: "Temples and tea", Location: "Kyoto, Japan",
		Price: 500, Duration: 4, MaxPeople: maxPeople,
	}
	require.NoError(t, e.db.Create(tour).Error)
	return tour
}

func (e *testEnv) hotel(t *testing.T) *db_models.Hotel {
	t.Helper()
	h := &db_models.Hotel{
		Name: "Harbour Inn", Description: "By the water", Location: "Sydney, Australia",
		Price: 180, Rating: 4.5, Amenities: datatypes.JSONSlice[string]{"WiFi"},
	}
	require.NoError(t, e.db.Create(h).Error)
	return h
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) setStatus(t *testing.T, bookingID uuid.UUID, st db_models.BookingStatus) {
	t.Helper()
	require.NoError(t, e.db.Model(&db_models.Booking{}).Where("id = ?", bookingID).Update("status", st).Error)
}

func ptr[T any](v T) *T { return &v }

func zapNop() *zap.Logger { return zap.NewNop() }
