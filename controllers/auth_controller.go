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

// LoginRequest represents the request body for looking an account up by role
type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminRequest represents the request body for registering an administrator
type AdminRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// AuthController handles login and administrator registration
type AuthController struct {
	db          *gorm.DB
	clients     *repositories.ClientRepository
	restaurants *repositories.RestaurantRepository
	admins      *repositories.AdminRepository
	validator   *services.AccountValidator
}

// NewAuthController creates an AuthController bound to the given database handle
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		db:          db,
		clients:     repositories.NewClientRepository(db),
		restaurants: repositories.NewRestaurantRepository(db),
		admins:      repositories.NewAdminRepository(db),
		validator:   services.NewAccountValidator(db),
	}
}

// Login handles POST /api/v1/auth/login - looks the account up in the table
// selected by role. There are no passwords; the session layer in front of
// this API handles the rest.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !utils.IsValidEmail(req.Email) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid e-mail format")
		return
	}

	email := utils.NormalizeEmail(req.Email)

	var account interface{}
	var err error
	switch services.AccountKind(strings.ToLower(req.Role)) {
	case services.AccountClient:
		account, err = ctrl.clients.FindByEmail(ctrl.db, email)
	case services.AccountRestaurant:
		account, err = ctrl.restaurants.FindByEmail(ctrl.db, email)
	case services.AccountAdmin:
		account, err = ctrl.admins.FindByEmail(ctrl.db, email)
	default:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be client, restaurant or admin")
		return
	}

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found for the selected profile")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Login failed")
		return
	}

	respondData(c, http.StatusOK, account)
}

// CreateAdmin handles POST /api/v1/admins
func (ctrl *AuthController) CreateAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !utils.IsValidString(req.Name, 3) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name must have at least 3 characters")
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

	admin := models.Admin{
		Name:  strings.TrimSpace(req.Name),
		Phone: utils.NormalizePhone(req.Phone),
		Email: utils.NormalizeEmail(req.Email),
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.validator.EnsureEmailUnique(tx, admin.Email, 0, ""); err != nil {
			return err
		}
		return ctrl.admins.Create(tx, &admin)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_IN_USE", "This e-mail is already registered to another account")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create admin")
		return
	}

	respondData(c, http.StatusCreated, admin)
}
