package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelService
}

func NewHotelController(hotelService services.HotelService) *HotelController {
	return &HotelController{hotelService: hotelService}
}

// ListHotels godoc
// @Summary List hotels
// @Tags Hotels
// @Produce json
// @Param featured query bool false "Only featured hotels"
// @Success 200 {object} utils.APIResponse
// @Router /hotels [get]
func (hc *HotelController) ListHotels(c *gin.Context) {
	hotels, err := hc.hotelService.ListHotels(c.Request.Context(), c.Query("featured") == "true")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewHotelResponses(hotels), "Fetched hotels successfully")
}

// SearchHotels godoc
// @Summary Search hotels by text, location and price range
// @Tags Hotels
// @Produce json
// @Param query query string false "Matches name or description"
// @Param location query string false "Location substring"
// @Param minPrice query number false "Lower price bound"
// @Param maxPrice query number false "Upper price bound"
// @Success 200 {object} utils.APIResponse
// @Router /hotels/search [get]
func (hc *HotelController) SearchHotels(c *gin.Context) {
	var q request_models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid search parameters")
		return
	}
	hotels, err := hc.hotelService.SearchHotels(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewHotelResponses(hotels), "Fetched hotels successfully")
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	hotel, err := hc.hotelService.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewHotelResponse(hotel), "Fetched hotel successfully")
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid hotel data")
		return
	}
	hotel, err := hc.hotelService.CreateHotel(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewHotelResponse(hotel), "Hotel created successfully")
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid hotel data")
		return
	}
	hotel, err := hc.hotelService.UpdateHotel(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewHotelResponse(hotel), "Hotel updated successfully")
}

// DeleteHotel removes the hotel together with its images and bookings.
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	if err := hc.hotelService.DeleteHotel(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel deleted successfully")
}
