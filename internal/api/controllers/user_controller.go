package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type UserController struct {
	wishlistService    services.WishlistService
	preferencesService services.PreferencesService
}

func NewUserController(wishlistService services.WishlistService, preferencesService services.PreferencesService) *UserController {
	return &UserController{wishlistService: wishlistService, preferencesService: preferencesService}
}

func (uc *UserController) ListWishlist(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	items, err := uc.wishlistService.List(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewWishlistItemResponses(items), "Fetched wishlist successfully")
}

// AddToWishlist godoc
// @Summary Save a tour or a hotel to the wishlist
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.WishlistRequest true "Exactly one of tourId or hotelId"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/wishlist [post]
func (uc *UserController) AddToWishlist(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid wishlist data")
		return
	}
	item, err := uc.wishlistService.Add(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewWishlistItemResponses([]db_models.WishlistItem{*item})[0], "Added to wishlist")
}

func (uc *UserController) RemoveFromWishlist(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		utils.HandleServiceError(c, utils.Validationf("id is required"))
		return
	}
	if err := uc.wishlistService.Remove(c.Request.Context(), caller, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Removed from wishlist")
}

// GetPreferences answers with null data when the caller never saved any.
func (uc *UserController) GetPreferences(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	prefs, err := uc.preferencesService.Get(c.Request.Context(), caller)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPreferencesResponse(prefs), "Fetched preferences successfully")
}

func (uc *UserController) SavePreferences(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid preferences data")
		return
	}
	prefs, err := uc.preferencesService.Upsert(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPreferencesResponse(prefs), "Preferences saved")
}

func (uc *UserController) PatchPreferences(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req request_models.PreferencesPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err, "Invalid preferences data")
		return
	}
	prefs, err := uc.preferencesService.Patch(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPreferencesResponse(prefs), "Preferences updated")
}
