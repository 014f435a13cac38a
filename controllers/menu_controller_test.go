package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matfreire/food-orders-api/models"
)

func TestCreateMenuItem(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupRouter(db)

	restaurant := seedRestaurant(t, db, "Cantina da Nona", "nona@example.com")
	other := seedRestaurant(t, db, "Sushi Zen", "zen@example.com")

	seedItem := models.MenuItem{RestaurantID: restaurant.ID, Name: "Lasagna", Price: 32.0, Category: "Mains"}
	assert.NoError(t, db.Create(&seedItem).Error)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Successfully create menu item",
			requestBody: map[string]interface{}{
				"restaurant_id": restaurant.ID,
				"name":          "Tiramisu",
				"description":   "House classic",
				"price":         18.5,
				"category":      "Desserts",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Same name is fine on another restaurant's menu",
			requestBody: map[string]interface{}{
				"restaurant_id": other.ID,
				"name":          "Lasagna",
				"price":         40.0,
				"category":      "Mains",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Fail with duplicate name on the same menu",
			requestBody: map[string]interface{}{
				"restaurant_id": restaurant.ID,
				"name":          "Lasagna",
				"price":         35.0,
				"category":      "Mains",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "MENU_NAME_IN_USE",
		},
		{
			name: "Fail with zero price",
			requestBody: map[string]interface{}{
				"restaurant_id": restaurant.ID,
				"name":          "Espresso",
				"price":         0.0,
				"category":      "Drinks",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with negative price",
			requestBody: map[string]interface{}{
				"restaurant_id": restaurant.ID,
				"name":          "Espresso",
				"price":         -2.0,
				"category":      "Drinks",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with unknown restaurant",
			requestBody: map[string]interface{}{
				"restaurant_id": 9999,
				"name":          "Espresso",
				"price":         6.0,
				"category":      "Drinks",
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "RESTAURANT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "POST", "/api/v1/menu", tt.requestBody, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(t, w))
			}
		})
	}
}

func TestListMenu_GroupedByCategory(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupRouter(db)

	restaurant := seedRestaurant(t, db, "Cantina da Nona", "nona@example.com")
	for _, item := range []models.MenuItem{
		{RestaurantID: restaurant.ID, Name: "Lasagna", Price: 32.0, Category: "Mains"},
		{RestaurantID: restaurant.ID, Name: "Espresso", Price: 6.0, Category: "Drinks"},
		{RestaurantID: restaurant.ID, Name: "Tiramisu", Price: 18.5, Category: "Desserts"},
	} {
		assert.NoError(t, db.Create(&item).Error)
	}

	w := performRequest(router, "GET", fmt.Sprintf("/api/v1/restaurants/%d/menu", restaurant.ID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	items := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, items, 3)

	// items come back ordered by category so the UI can group them
	assert.Equal(t, "Tiramisu", items[0].(map[string]interface{})["name"])
	assert.Equal(t, "Espresso", items[1].(map[string]interface{})["name"])
	assert.Equal(t, "Lasagna", items[2].(map[string]interface{})["name"])

	// an unknown restaurant simply has an empty menu
	w = performRequest(router, "GET", "/api/v1/restaurants/9999/menu", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseResponse(t, w)["data"].([]interface{}), 0)
}

func TestUpdateAndDeleteMenuItem(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupRouter(db)

	restaurant := seedRestaurant(t, db, "Cantina da Nona", "nona@example.com")
	item := models.MenuItem{RestaurantID: restaurant.ID, Name: "Lasagna", Price: 32.0, Category: "Mains"}
	assert.NoError(t, db.Create(&item).Error)
	taken := models.MenuItem{RestaurantID: restaurant.ID, Name: "Risotto", Price: 38.0, Category: "Mains"}
	assert.NoError(t, db.Create(&taken).Error)

	// renaming onto an existing item is rejected
	w := performRequest(router, "PUT", fmt.Sprintf("/api/v1/menu/%d", item.ID),
		map[string]interface{}{"name": "Risotto", "price": 33.0, "category": "Mains"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MENU_NAME_IN_USE", errorCode(t, w))

	// keeping its own name while changing the price is fine
	w = performRequest(router, "PUT", fmt.Sprintf("/api/v1/menu/%d", item.ID),
		map[string]interface{}{"name": "Lasagna", "price": 34.0, "category": "Mains"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 34.0, data["price"])

	w = performRequest(router, "DELETE", fmt.Sprintf("/api/v1/menu/%d", item.ID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = performRequest(router, "DELETE", fmt.Sprintf("/api/v1/menu/%d", item.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", errorCode(t, w))
}
