package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview godoc
// @Summary Review a tour the caller has a confirmed booking for
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid review data")
		return
	}
	review, err := rc.reviewService.Create(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondWithStatus(c, http.StatusCreated, response_models.NewReviewResponses([]db_models.Review{*review})[0], "Review submitted")
}

func (rc *ReviewController) ListTourReviews(c *gin.Context) {
	tourID := c.Query("tourId")
	if tourID == "" {
		utils.HandleServiceError(c, utils.Validationf("tourId is required"))
		return
	}
	reviews, err := rc.reviewService.ListByTour(c.Request.Context(), tourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewReviewResponses(reviews), "Fetched reviews successfully")
}
