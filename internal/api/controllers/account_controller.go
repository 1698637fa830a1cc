package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid request format")
		return
	}

	user, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, response_models.NewAccountResponse(user), "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid request format")
		return
	}

	res, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt.UnixMilli(),
		"user":      response_models.NewAccountResponse(res.User),
	}, "Login successful")
}

// Logout revokes the presented token until it expires.
func (a *AccountController) Logout(c *gin.Context) {
	tokenID, expiresAt := middleware.CurrentToken(c)
	a.accountService.Logout(tokenID, expiresAt)
	utils.RespondSuccess(c, nil, "Logged out")
}

func (a *AccountController) Me(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	user, err := a.accountService.Me(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "Fetched profile successfully")
}

// ListUsers godoc
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AccountController) ListUsers(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	users, total, err := a.accountService.ListUsers(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{
		"items":    response_models.NewAccountResponses(users),
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}, "Fetched users successfully")
}

func (a *AccountController) ChangeRole(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid request format")
		return
	}
	user, err := a.accountService.ChangeRole(c.Request.Context(), caller, c.Param("id"), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "Role updated successfully")
}

func (a *AccountController) DeleteUser(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := a.accountService.DeleteUser(c.Request.Context(), caller, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}
