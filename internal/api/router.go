package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/api/controllers"
	"voyago/internal/models/db_models"
	"voyago/internal/services"
	"voyago/pkg/config"
	"voyago/pkg/memcache"
	"voyago/pkg/metrics"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

type Controllers struct {
	Account     *controllers.AccountController
	Booking     *controllers.BookingController
	PaymentPlan *controllers.PaymentPlanController
	Tour        *controllers.TourController
	Hotel       *controllers.HotelController
	Image       *controllers.ImageController
	User        *controllers.UserController
	Review      *controllers.ReviewController
	Marketing   *controllers.MarketingController
}

type RouterDeps struct {
	Config  config.App
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Tokens  *utils.TokenManager
	Revoked memcache.RevokedTokenStore
	// Health is optional; when set, /healthz reports 503 on error.
	Health func(ctx context.Context) error
}

func NewRouter(deps RouterDeps, h Controllers) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(deps.Log))
	if deps.Config.Metrics.Enabled && deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.GET(deps.Config.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowOrigin))

	r.GET("/healthz", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(c.Request.Context()); err != nil {
				deps.Log.Error("health check failed", zap.Error(err))
				utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "OK")
	})
	if deps.Config.Uploads.Dir != "" {
		r.Static(deps.Config.Uploads.URLPrefix, deps.Config.Uploads.Dir)
	}

	RegisterRoutes(r, deps, h)
	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps, h Controllers) {
	auth := middleware.JWTAuthMiddleware(deps.Tokens, deps.Revoked)
	adminOnly := middleware.RequireRole(string(db_models.RoleAdmin))
	bookingAdmin := middleware.RequireRole(services.BookingAdminRoles...)

	accounts := r.Group("/accounts")
	accounts.POST("/register", h.Account.Register)
	accounts.POST("/login", h.Account.Login)
	accounts.POST("/logout", auth, h.Account.Logout)
	accounts.GET("/me", auth, h.Account.Me)

	tours := r.Group("/tours")
	tours.GET("", h.Tour.ListTours)
	tours.GET("/search", h.Tour.SearchTours)
	tours.GET("/:id", h.Tour.GetTour)

	hotels := r.Group("/hotels")
	hotels.GET("", h.Hotel.ListHotels)
	hotels.GET("/search", h.Hotel.SearchHotels)
	hotels.GET("/:id", h.Hotel.GetHotel)

	r.GET("/images", h.Image.ListTourImages)
	r.GET("/reviews", h.Review.ListTourReviews)
	r.POST("/reviews", auth, h.Review.CreateReview)
	r.GET("/testimonials", h.Marketing.ListTestimonials)
	r.POST("/contact", h.Marketing.SubmitContact)

	bookings := r.Group("/bookings", auth)
	bookings.POST("", h.Booking.CreateTourBooking)
	bookings.GET("", h.Booking.ListBookings)
	bookings.GET("/user", h.Booking.ListUserBookings)
	bookings.POST("/group", h.Booking.CreateGroupBooking)
	bookings.GET("/group", h.Booking.ListGroupBookings)
	bookings.PATCH("/group", h.Booking.UpdateGroupBooking)
	bookings.POST("/hotel", h.Booking.CreateHotelBooking)
	bookings.GET("/hotel", h.Booking.ListHotelBookings)
	bookings.GET("/:type/:id", h.Booking.GetBooking)

	plans := r.Group("/payment-plans", auth)
	plans.GET("/:bookingId", h.PaymentPlan.GetPlan)
	plans.POST("/:bookingId/installments", h.PaymentPlan.PayInstallment)

	user := r.Group("/user", auth)
	user.GET("/wishlist", h.User.ListWishlist)
	user.POST("/wishlist", h.User.AddToWishlist)
	user.DELETE("/wishlist", h.User.RemoveFromWishlist)
	user.GET("/preferences", h.User.GetPreferences)
	user.POST("/preferences", h.User.SavePreferences)
	user.PATCH("/preferences", h.User.PatchPreferences)

	admin := r.Group("/admin", auth)
	admin.POST("/tours", adminOnly, h.Tour.CreateTour)
	admin.PUT("/tours/:id", adminOnly, h.Tour.UpdateTour)
	admin.DELETE("/tours/:id", adminOnly, h.Tour.DeleteTour)
	admin.POST("/tours/:id/images", adminOnly, h.Image.UploadTourImages)
	admin.POST("/hotels", adminOnly, h.Hotel.CreateHotel)
	admin.PUT("/hotels/:id", adminOnly, h.Hotel.UpdateHotel)
	admin.DELETE("/hotels/:id", adminOnly, h.Hotel.DeleteHotel)
	admin.POST("/hotels/:id/images", adminOnly, h.Image.UploadHotelImages)
	admin.DELETE("/images/:id", adminOnly, h.Image.DeleteImage)

	admin.GET("/bookings", bookingAdmin, h.Booking.AdminListBookings)
	admin.PATCH("/bookings/:id", bookingAdmin, h.Booking.AdminUpdateBooking)
	admin.POST("/payment-plans/mark-overdue", adminOnly, h.PaymentPlan.MarkOverdue)

	admin.GET("/users", adminOnly, h.Account.ListUsers)
	admin.PATCH("/users/:id/role", adminOnly, h.Account.ChangeRole)
	admin.DELETE("/users/:id", adminOnly, h.Account.DeleteUser)
}
