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

// RestaurantRequest represents the request body for creating or updating a restaurant
type RestaurantRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CuisineType string `json:"cuisine_type"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

// RestaurantController handles restaurant account endpoints
type RestaurantController struct {
	db          *gorm.DB
	restaurants *repositories.RestaurantRepository
	orders      *repositories.OrderRepository
	validator   *services.AccountValidator
}

// NewRestaurantController creates a RestaurantController bound to the given database handle
func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		db:          db,
		restaurants: repositories.NewRestaurantRepository(db),
		orders:      repositories.NewOrderRepository(db),
		validator:   services.NewAccountValidator(db),
	}
}

// List handles GET /api/v1/restaurants
func (ctrl *RestaurantController) List(c *gin.Context) {
	restaurants, err := ctrl.restaurants.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list restaurants")
		return
	}
	respondData(c, http.StatusOK, restaurants)
}

// Get handles GET /api/v1/restaurants/:id
func (ctrl *RestaurantController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Restaurant id must be a positive number")
		return
	}

	restaurant, err := ctrl.restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load restaurant")
		return
	}
	respondData(c, http.StatusOK, restaurant)
}

// Create handles POST /api/v1/restaurants
func (ctrl *RestaurantController) Create(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !utils.IsValidString(req.Name, 2) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant name must have at least 2 characters")
		return
	}
	if !utils.IsValidString(req.CuisineType, 3) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cuisine type is required")
		return
	}
	if !utils.IsValidString(req.Address, 5) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Address is required")
		return
	}
	if !utils.IsValidPhone(req.Phone) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Phone must have between 10 and 15 digits")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid e-mail format")
		return
	}

	// Restaurant names are unique among restaurants
	if _, err := ctrl.restaurants.FindByName(strings.TrimSpace(req.Name), 0); err == nil {
		respondError(c, http.StatusConflict, "NAME_IN_USE", "A restaurant with this name already exists")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check restaurant name")
		return
	}

	restaurant := models.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Phone:       utils.NormalizePhone(req.Phone),
		CuisineType: strings.TrimSpace(req.CuisineType),
		Address:     strings.TrimSpace(req.Address),
		Email:       utils.NormalizeEmail(req.Email),
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.validator.EnsureEmailUnique(tx, restaurant.Email, 0, ""); err != nil {
			return err
		}
		return ctrl.restaurants.Create(tx, &restaurant)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_IN_USE", "This e-mail is already registered to another account")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create restaurant")
		return
	}

	respondData(c, http.StatusCreated, restaurant)
}

// Update handles PUT /api/v1/restaurants/:id - absent fields keep their current values
func (ctrl *RestaurantController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Restaurant id must be a positive number")
		return
	}

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	restaurant, err := ctrl.restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load restaurant")
		return
	}

	if req.Name != "" {
		if !utils.IsValidString(req.Name, 2) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant name must have at least 2 characters")
			return
		}
		if _, err := ctrl.restaurants.FindByName(strings.TrimSpace(req.Name), id); err == nil {
			respondError(c, http.StatusConflict, "NAME_IN_USE", "This name is already used by another restaurant")
			return
		} else if !errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check restaurant name")
			return
		}
		restaurant.Name = strings.TrimSpace(req.Name)
	}
	if req.Phone != "" {
		if !utils.IsValidPhone(req.Phone) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Phone must have between 10 and 15 digits")
			return
		}
		restaurant.Phone = utils.NormalizePhone(req.Phone)
	}
	if req.CuisineType != "" {
		restaurant.CuisineType = strings.TrimSpace(req.CuisineType)
	}
	if req.Address != "" {
		restaurant.Address = strings.TrimSpace(req.Address)
	}

	email := restaurant.Email
	if req.Email != "" {
		if !utils.IsValidEmail(req.Email) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid e-mail format")
			return
		}
		email = utils.NormalizeEmail(req.Email)
		restaurant.Email = email
	}

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.validator.EnsureEmailUnique(tx, email, id, services.AccountRestaurant); err != nil {
			return err
		}
		return ctrl.restaurants.Update(tx, restaurant)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_IN_USE", "This e-mail is already registered to another account")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update restaurant")
		return
	}

	respondData(c, http.StatusOK, restaurant)
}

// Delete handles DELETE /api/v1/restaurants/:id - rejected while orders reference the restaurant
func (ctrl *RestaurantController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Restaurant id must be a positive number")
		return
	}

	if _, err := ctrl.restaurants.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load restaurant")
		return
	}

	count, err := ctrl.orders.CountByRestaurant(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check restaurant orders")
		return
	}
	if count > 0 {
		respondError(c, http.StatusConflict, "RESTAURANT_HAS_ORDERS", "Restaurant has order history; remove the orders before deleting the account")
		return
	}

	if err := ctrl.restaurants.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete restaurant")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Restaurant deleted"})
}
