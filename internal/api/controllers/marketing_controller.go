package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type MarketingController struct {
	marketingService services.MarketingService
}

func NewMarketingController(marketingService services.MarketingService) *MarketingController {
	return &MarketingController{marketingService: marketingService}
}

// SubmitContact godoc
// @Summary Send a message to the support team
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact form"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contact [post]
func (mc *MarketingController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid contact form")
		return
	}
	msg, err := mc.marketingService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondWithStatus(c, http.StatusCreated, response_models.ContactResponse{ID: msg.ID.String()}, "Message received")
}

func (mc *MarketingController) ListTestimonials(c *gin.Context) {
	items, err := mc.marketingService.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewTestimonialResponses(items), "Fetched testimonials successfully")
}
