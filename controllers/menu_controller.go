package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
	"github.com/matfreire/food-orders-api/repositories"
	"github.com/matfreire/food-orders-api/services"
	"github.com/matfreire/food-orders-api/utils"
)

// MenuItemRequest represents the request body for creating or updating a menu item
type MenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
}

// MenuController handles menu item endpoints
type MenuController struct {
	menus       *repositories.MenuRepository
	restaurants *repositories.RestaurantRepository
}

// NewMenuController creates a MenuController bound to the given database handle
func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{
		menus:       repositories.NewMenuRepository(db),
		restaurants: repositories.NewRestaurantRepository(db),
	}
}

// ListByRestaurant handles GET /api/v1/restaurants/:id/menu
func (ctrl *MenuController) ListByRestaurant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Restaurant id must be a positive number")
		return
	}

	items, err := ctrl.menus.FindByRestaurant(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load menu")
		return
	}

	attachImageURLs(items)
	respondData(c, http.StatusOK, items)
}

// Create handles POST /api/v1/menu
func (ctrl *MenuController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if req.RestaurantID == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant is required")
		return
	}
	if msg, ok := validateMenuItemRequest(&req); !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
		return
	}

	if _, err := ctrl.restaurants.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load restaurant")
		return
	}

	name := strings.TrimSpace(req.Name)
	if _, err := ctrl.menus.FindByNameInRestaurant(req.RestaurantID, name, 0); err == nil {
		respondError(c, http.StatusConflict, "MENU_NAME_IN_USE", "An item with this name already exists on this menu")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check menu item name")
		return
	}

	item := models.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         name,
		Description:  trimmedOrNil(req.Description),
		Price:        req.Price,
		Category:     strings.TrimSpace(req.Category),
	}

	if err := ctrl.menus.Create(&item); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create menu item")
		return
	}

	respondData(c, http.StatusCreated, item)
}

// Update handles PUT /api/v1/menu/:id
func (ctrl *MenuController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Menu item id must be a positive number")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if msg, ok := validateMenuItemRequest(&req); !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
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

	name := strings.TrimSpace(req.Name)
	if _, err := ctrl.menus.FindByNameInRestaurant(item.RestaurantID, name, id); err == nil {
		respondError(c, http.StatusConflict, "MENU_NAME_IN_USE", "An item with this name already exists on this menu")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check menu item name")
		return
	}

	item.Name = name
	item.Description = trimmedOrNil(req.Description)
	item.Price = req.Price
	item.Category = strings.TrimSpace(req.Category)

	if err := ctrl.menus.Update(item); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update menu item")
		return
	}

	respondData(c, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/menu/:id. Orders carry their own item
// snapshots, so removing a menu item never touches order history.
func (ctrl *MenuController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Menu item id must be a positive number")
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

	if err := ctrl.menus.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete menu item")
		return
	}

	// Best effort: orphaned images are harmless, a failed delete is not
	if imageService := services.GetImageService(); imageService != nil && item.ImageS3Key != nil {
		_ = imageService.DeleteImage(*item.ImageS3Key)
	}

	respondData(c, http.StatusOK, gin.H{"message": "Menu item removed"})
}

func validateMenuItemRequest(req *MenuItemRequest) (string, bool) {
	if !utils.IsValidString(req.Name, 2) {
		return "Item name must have at least 2 characters", false
	}
	if req.Price <= 0 {
		return "Price must be greater than zero", false
	}
	if !utils.IsValidString(req.Category, 2) {
		return "Category is required", false
	}
	return "", true
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// attachImageURLs fills the computed ImageURL field with presigned URLs when
// image storage is configured
func attachImageURLs(items []models.MenuItem) {
	imageService := services.GetImageService()
	if imageService == nil {
		return
	}
	for i := range items {
		if items[i].ImageS3Key == nil {
			continue
		}
		if url, err := imageService.GetImageURL(*items[i].ImageS3Key); err == nil && url != "" {
			items[i].ImageURL = &url
		}
	}
}
