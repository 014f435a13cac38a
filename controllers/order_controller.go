package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
	"github.com/matfreire/food-orders-api/repositories"
)

// OrderItemRequest represents one line item in an order creation request
type OrderItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	ClientID     uint               `json:"client_id"`
	RestaurantID uint               `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest represents the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderController handles order endpoints
type OrderController struct {
	orders      *repositories.OrderRepository
	clients     *repositories.ClientRepository
	restaurants *repositories.RestaurantRepository
}

// NewOrderController creates an OrderController bound to the given database handle
func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		orders:      repositories.NewOrderRepository(db),
		clients:     repositories.NewClientRepository(db),
		restaurants: repositories.NewRestaurantRepository(db),
	}
}

// Create handles POST /api/v1/orders - the order and all its line items are
// committed in one transaction; a failure leaves no trace of the order.
func (ctrl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if req.ClientID == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Client is required")
		return
	}
	if req.RestaurantID == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant is required")
		return
	}
	if len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "An order must contain at least one item")
		return
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Description) == "" {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Item with an empty description")
			return
		}
		if item.Quantity <= 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
				fmt.Sprintf("Invalid quantity for item: %s", item.Description))
			return
		}
		if item.Price < 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
				fmt.Sprintf("Invalid price for item: %s", item.Description))
			return
		}
	}

	if _, err := ctrl.clients.FindByID(req.ClientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load client")
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

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	order, err := ctrl.orders.Create(req.ClientID, req.RestaurantID, items)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ORDER_CREATE_FAILED", "Failed to process the order")
		return
	}

	respondData(c, http.StatusCreated, order)
}

// List handles GET /api/v1/orders - all orders, newest first
func (ctrl *OrderController) List(c *gin.Context) {
	orders, err := ctrl.orders.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// Get handles GET /api/v1/orders/:id
func (ctrl *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Order id must be a positive number")
		return
	}

	order, err := ctrl.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order")
		return
	}
	respondData(c, http.StatusOK, order)
}

// GetByRestaurant handles GET /api/v1/orders/restaurant/:id
func (ctrl *OrderController) GetByRestaurant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Restaurant id must be a positive number")
		return
	}

	orders, err := ctrl.orders.FindByRestaurant(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// GetByClient handles GET /api/v1/orders/client/:id
func (ctrl *OrderController) GetByClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Client id must be a positive number")
		return
	}

	orders, err := ctrl.orders.FindByClient(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/v1/orders/:id - the token must normalize to
// one of the five legal statuses before the store is touched.
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Order id must be a positive number")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		return
	}

	order, err := ctrl.orders.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order status")
		return
	}

	respondData(c, http.StatusOK, order)
}
