package controllers_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api"
	"voyago/internal/api/controllers"
)

type params struct {
	fx.In

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

var Module = fx.Provide(provideControllers)

func provideControllers(p params) api.Controllers {
	return api.Controllers{
		Account:     p.Account,
		Booking:     p.Booking,
		PaymentPlan: p.PaymentPlan,
		Tour:        p.Tour,
		Hotel:       p.Hotel,
		Image:       p.Image,
		User:        p.User,
		Review:      p.Review,
		Marketing:   p.Marketing,
	}
}
