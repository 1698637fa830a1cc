package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PaymentPlanController struct {
	planService services.PaymentPlanService
}

func NewPaymentPlanController(planService services.PaymentPlanService) *PaymentPlanController {
	return &PaymentPlanController{planService: planService}
}

func (pc *PaymentPlanController) GetPlan(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	plan, err := pc.planService.GetPlan(c.Request.Context(), caller, c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaymentPlanResponse(plan), "Fetched payment plan successfully")
}

// PayInstallment godoc
// @Summary Record the next installment of a payment plan
// @Tags Payment plans
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payment-plans/{bookingId}/installments [post]
func (pc *PaymentPlanController) PayInstallment(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	plan, err := pc.planService.PayInstallment(c.Request.Context(), caller, c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaymentPlanResponse(plan), "Installment recorded")
}

func (pc *PaymentPlanController) MarkOverdue(c *gin.Context) {
	n, err := pc.planService.MarkOverdue(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MarkOverdueResponse{Defaulted: n}, "Overdue plans processed")
}
