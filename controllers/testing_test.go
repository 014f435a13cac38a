package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/middleware"
	"github.com/matfreire/food-orders-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupControllerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Restaurant{},
		&models.Admin{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupRouter wires every controller the way main does, against the test database
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Identity())

	authController := NewAuthController(db)
	clientController := NewClientController(db)
	restaurantController := NewRestaurantController(db)
	menuController := NewMenuController(db)
	orderController := NewOrderController(db)
	uploadController := NewUploadController(db)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authController.Login)
		v1.POST("/admins", authController.CreateAdmin)

		v1.GET("/clients", clientController.List)
		v1.POST("/clients", clientController.Create)
		v1.GET("/clients/:id", clientController.Get)
		v1.PUT("/clients/:id", clientController.Update)
		v1.DELETE("/clients/:id", clientController.Delete)

		v1.GET("/restaurants", restaurantController.List)
		v1.POST("/restaurants", restaurantController.Create)
		v1.GET("/restaurants/:id", restaurantController.Get)
		v1.PUT("/restaurants/:id", restaurantController.Update)
		v1.DELETE("/restaurants/:id", restaurantController.Delete)
		v1.GET("/restaurants/:id/menu", menuController.ListByRestaurant)

		v1.POST("/menu", menuController.Create)
		v1.PUT("/menu/:id", menuController.Update)
		v1.DELETE("/menu/:id", menuController.Delete)
		v1.POST("/menu/:id/image",
			middleware.RequireRole("restaurant"),
			uploadController.UploadMenuImage)

		v1.POST("/orders", orderController.Create)
		v1.GET("/orders", orderController.List)
		v1.GET("/orders/:id", orderController.Get)
		v1.GET("/orders/restaurant/:id", orderController.GetByRestaurant)
		v1.GET("/orders/client/:id", orderController.GetByClient)
		v1.PUT("/orders/:id", orderController.UpdateStatus)
	}

	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response body %q: %v", w.Body.String(), err)
	}
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	response := parseResponse(t, w)
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %q", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func seedClient(t *testing.T, db *gorm.DB, email string) models.Client {
	client := models.Client{
		Name:    "Ana Lima",
		Email:   email,
		Phone:   "11987654321",
		Address: "Rua das Flores, 100",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}
	return client
}

func seedRestaurant(t *testing.T, db *gorm.DB, name, email string) models.Restaurant {
	restaurant := models.Restaurant{
		Name:        name,
		Email:       email,
		Phone:       "1133334444",
		Address:     "Av. Paulista, 200",
		CuisineType: "Italian",
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("Failed to seed restaurant: %v", err)
	}
	return restaurant
}
