package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingService
}

func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateTourBooking godoc
// @Summary Book a tour
// @Description Creates a PENDING booking when the party fits the tour's capacity
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateTourBookingRequest true "Tour booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings [post]
func (bc *BookingController) CreateTourBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.CreateTourBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid booking data")
		return
	}

	booking, err := bc.bookingService.CreateTourBooking(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Booking created successfully")
}

// CreateHotelBooking godoc
// @Summary Book a hotel stay
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateHotelBookingRequest true "Hotel booking payload"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/hotel [post]
func (bc *BookingController) CreateHotelBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.CreateHotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid booking data")
		return
	}

	booking, err := bc.bookingService.CreateHotelBooking(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Hotel booking created successfully")
}

// CreateGroupBooking godoc
// @Summary Book a tour or hotel for a group
// @Description Set paymentOption to "Installments" to attach a 3 to 6 part payment plan
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateGroupBookingRequest true "Group booking payload"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/group [post]
func (bc *BookingController) CreateGroupBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.CreateGroupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid booking data")
		return
	}

	booking, err := bc.bookingService.CreateGroupBooking(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Group booking created successfully")
}

func (bc *BookingController) ListBookings(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var q request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid query parameters")
		return
	}
	bookings, err := bc.bookingService.ListBookings(c.Request.Context(), caller, q.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponses(bookings), "Fetched bookings successfully")
}

func (bc *BookingController) ListUserBookings(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var q request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid query parameters")
		return
	}
	bookings, err := bc.bookingService.ListUserBookings(c.Request.Context(), caller, q.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponses(bookings), "Fetched bookings successfully")
}

func (bc *BookingController) ListGroupBookings(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	bookings, err := bc.bookingService.ListGroupBookings(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponses(bookings), "Fetched group bookings successfully")
}

func (bc *BookingController) ListHotelBookings(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var q request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid query parameters")
		return
	}
	bookings, err := bc.bookingService.ListHotelBookings(c.Request.Context(), caller, q.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponses(bookings), "Fetched hotel bookings successfully")
}

// GetBooking godoc
// @Summary Get one of the caller's bookings
// @Tags Bookings
// @Produce json
// @Param type path string true "tour or hotel"
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/{type}/{id} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	booking, err := bc.bookingService.GetBooking(c.Request.Context(), caller, c.Param("type"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Fetched booking successfully")
}

// UpdateGroupBooking godoc
// @Summary Update status or paid amount of an own booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id query string true "Booking ID"
// @Param request body request_models.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/group [patch]
func (bc *BookingController) UpdateGroupBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		utils.HandleServiceError(c, utils.Validationf("id is required"))
		return
	}
	var req request_models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid update data")
		return
	}

	booking, err := bc.bookingService.UpdateGroupBooking(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Booking updated successfully")
}

func (bc *BookingController) AdminListBookings(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var q request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid query parameters")
		return
	}
	bookings, err := bc.bookingService.AdminListBookings(c.Request.Context(), caller, q.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponses(bookings), "Fetched bookings successfully")
}

func (bc *BookingController) AdminUpdateBooking(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid update data")
		return
	}
	booking, err := bc.bookingService.AdminUpdateBooking(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewBookingResponse(booking), "Booking updated successfully")
}
