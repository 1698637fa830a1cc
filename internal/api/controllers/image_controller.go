package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

const uploadField = "files"

type ImageController struct {
	imageService services.ImageService
}

func NewImageController(imageService services.ImageService) *ImageController {
	return &ImageController{imageService: imageService}
}

// UploadTourImages godoc
// @Summary Attach images to a tour
// @Description Images are resized to fit 2000x2000 and re-encoded
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tour ID"
// @Param files formData file true "One or more images"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/tours/{id}/images [post]
func (ic *ImageController) UploadTourImages(c *gin.Context) {
	ic.upload(c, services.OwnerTour, c.Param("id"))
}

// UploadHotelImages godoc
// @Summary Attach images to a hotel
// @Description Images are resized to fit 1200x800 and re-encoded
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hotel ID"
// @Param files formData file true "One or more images"
// @Success 201 {object} utils.APIResponse
// @Router /admin/hotels/{id}/images [post]
func (ic *ImageController) UploadHotelImages(c *gin.Context) {
	ic.upload(c, services.OwnerHotel, c.Param("id"))
}

func (ic *ImageController) upload(c *gin.Context, owner services.ImageOwner, ownerID string) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Expected multipart form data")
		return
	}
	files := form.File[uploadField]
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No files uploaded")
		return
	}

	images, err := ic.imageService.Upload(c.Request.Context(), owner, ownerID, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondWithStatus(c, http.StatusCreated, response_models.NewImageResponses(images), "Images uploaded successfully")
}

func (ic *ImageController) ListTourImages(c *gin.Context) {
	tourID := c.Query("tourId")
	if tourID == "" {
		utils.HandleServiceError(c, utils.Validationf("tourId is required"))
		return
	}
	images, err := ic.imageService.ListByTour(c.Request.Context(), tourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewImageResponses(images), "Fetched images successfully")
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	if err := ic.imageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
