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

// ClientRequest represents the request body for creating or updating a client
type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// ClientController handles client account endpoints
type ClientController struct {
	db        *gorm.DB
	clients   *repositories.ClientRepository
	orders    *repositories.OrderRepository
	validator *services.AccountValidator
}

// NewClientController creates a ClientController bound to the given database handle
func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{
		db:        db,
		clients:   repositories.NewClientRepository(db),
		orders:    repositories.NewOrderRepository(db),
		validator: services.NewAccountValidator(db),
	}
}

// List handles GET /api/v1/clients
func (ctrl *ClientController) List(c *gin.Context) {
	clients, err := ctrl.clients.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list clients")
		return
	}
	respondData(c, http.StatusOK, clients)
}

// Get handles GET /api/v1/clients/:id
func (ctrl *ClientController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Client id must be a positive number")
		return
	}

	client, err := ctrl.clients.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load client")
		return
	}
	respondData(c, http.StatusOK, client)
}

// Create handles POST /api/v1/clients
func (ctrl *ClientController) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if msg, ok := validateClientRequest(&req); !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
		return
	}

	client := models.Client{
		Name:    strings.TrimSpace(req.Name),
		Phone:   utils.NormalizePhone(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Email:   utils.NormalizeEmail(req.Email),
	}

	// Uniqueness check and insert share one transaction, so a concurrent
	// registration cannot slip between them.
	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.validator.EnsureEmailUnique(tx, client.Email, 0, ""); err != nil {
			return err
		}
		return ctrl.clients.Create(tx, &client)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_IN_USE", "This e-mail is already registered to another account")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create client")
		return
	}

	respondData(c, http.StatusCreated, client)
}

// Update handles PUT /api/v1/clients/:id
func (ctrl *ClientController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Client id must be a positive number")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if msg, ok := validateClientRequest(&req); !ok {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
		return
	}

	client, err := ctrl.clients.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load client")
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = utils.NormalizePhone(req.Phone)
	client.Address = strings.TrimSpace(req.Address)
	client.Email = utils.NormalizeEmail(req.Email)

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.validator.EnsureEmailUnique(tx, client.Email, id, services.AccountClient); err != nil {
			return err
		}
		return ctrl.clients.Update(tx, client)
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "EMAIL_IN_USE", "This e-mail is already registered to another account")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update client")
		return
	}

	respondData(c, http.StatusOK, client)
}

// Delete handles DELETE /api/v1/clients/:id - rejected while orders reference the client
func (ctrl *ClientController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Client id must be a positive number")
		return
	}

	if _, err := ctrl.clients.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load client")
		return
	}

	count, err := ctrl.orders.CountByClient(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check client orders")
		return
	}
	if count > 0 {
		respondError(c, http.StatusConflict, "CLIENT_HAS_ORDERS", "Client has order history; remove the orders before deleting the account")
		return
	}

	if err := ctrl.clients.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete client")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Client deleted"})
}

func validateClientRequest(req *ClientRequest) (string, bool) {
	if !utils.IsValidString(req.Name, 3) {
		return "Name must have at least 3 characters", false
	}
	if !utils.IsValidString(req.Address, 5) {
		return "Address must have at least 5 characters", false
	}
	if !utils.IsValidPhone(req.Phone) {
		return "Phone must have between 10 and 15 digits", false
	}
	if !utils.IsValidEmail(req.Email) {
		return "Invalid e-mail format", false
	}
	return "", true
}
