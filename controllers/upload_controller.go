package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/repositories"
	"github.com/matfreire/food-orders-api/services"
	"github.com/matfreire/food-orders-api/utils"
)

// UploadController handles menu-item image uploads
type UploadController struct {
	menus *repositories.MenuRepository
}

// NewUploadController creates an UploadController bound to the given database handle
func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{
		menus: repositories.NewMenuRepository(db),
	}
}

// UploadMenuImage handles POST /api/v1/menu/:id/image - uploads a PNG for a
// menu item and stores its storage key; the previous image is deleted.
func (ctrl *UploadController) UploadMenuImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Menu item id must be a positive number")
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		respondError(c, http.StatusServiceUnavailable, "IMAGE_STORAGE_DISABLED", "Image storage is not configured")
		return
	}

	item, err := ctrl.menus.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load menu item")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required")
		return
	}

	imageKey, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload image")
		return
	}

	previousKey := item.ImageS3Key
	item.ImageS3Key = &imageKey
	if err := ctrl.menus.Update(item); err != nil {
		// keep storage consistent with the row we failed to update
		_ = imageService.DeleteImage(imageKey)
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save image reference")
		return
	}

	if previousKey != nil && *previousKey != imageKey {
		_ = imageService.DeleteImage(*previousKey)
	}

	if url, err := imageService.GetImageURL(imageKey); err == nil && url != "" {
		item.ImageURL = &url
	}

	respondData(c, http.StatusOK, item)
}
