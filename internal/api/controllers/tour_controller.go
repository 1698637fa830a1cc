package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TourController struct {
	tourService services.TourService
}

func NewTourController(tourService services.TourService) *TourController {
	return &TourController{tourService: tourService}
}

// ListTours godoc
// @Summary List tours
// @Tags Tours
// @Produce json
// @Param featured query bool false "Only featured tours"
// @Success 200 {object} utils.APIResponse
// @Router /tours [get]
func (tc *TourController) ListTours(c *gin.Context) {
	tours, err := tc.tourService.ListTours(c.Request.Context(), c.Query("featured") == "true")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTourResponses(tours), "Fetched tours successfully")
}

// SearchTours godoc
// @Summary Search tours by text, location and price range
// @Tags Tours
// @Produce json
// @Param query query string false "Matches title or description"
// @Param location query string false "Location substring"
// @Param minPrice query number false "Lower price bound"
// @Param maxPrice query number false "Upper price bound"
// @Success 200 {object} utils.APIResponse
// @Router /tours/search [get]
func (tc *TourController) SearchTours(c *gin.Context) {
	var q request_models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindingError(c, err, "Invalid search parameters")
		return
	}
	tours, err := tc.tourService.SearchTours(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTourResponses(tours), "Fetched tours successfully")
}

func (tc *TourController) GetTour(c *gin.Context) {
	tour, err := tc.tourService.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTourResponse(tour), "Fetched tour successfully")
}

func (tc *TourController) CreateTour(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid tour data")
		return
	}
	tour, err := tc.tourService.CreateTour(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTourResponse(tour), "Tour created successfully")
}

func (tc *TourController) UpdateTour(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid tour data")
		return
	}
	tour, err := tc.tourService.UpdateTour(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTourResponse(tour), "Tour updated successfully")
}

// DeleteTour removes the tour together with its images, bookings and reviews.
func (tc *TourController) DeleteTour(c *gin.Context) {
	if err := tc.tourService.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Tour deleted successfully")
}
