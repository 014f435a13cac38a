package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
)

// RestaurantRepository provides access to the restaurants table
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a RestaurantRepository bound to the given database handle
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// FindAll returns every restaurant ordered by name
func (r *RestaurantRepository) FindAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Order("name ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByID returns the restaurant with the given id, or ErrNotFound
func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindByEmail looks a restaurant up by e-mail on the given handle
func (r *RestaurantRepository) FindByEmail(tx *gorm.DB, email string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := tx.Where("email = ?", email).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindByName looks a restaurant up by exact name, case-insensitively,
// skipping excludeID so a restaurant may keep its own name on update.
func (r *RestaurantRepository) FindByName(name string, excludeID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	query := r.db.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// Create inserts a new restaurant on the given handle
func (r *RestaurantRepository) Create(tx *gorm.DB, restaurant *models.Restaurant) error {
	return tx.Create(restaurant).Error
}

// Update persists all fields of the restaurant on the given handle
func (r *RestaurantRepository) Update(tx *gorm.DB, restaurant *models.Restaurant) error {
	return tx.Save(restaurant).Error
}

// Delete removes the restaurant with the given id
func (r *RestaurantRepository) Delete(id uint) error {
	return r.db.Delete(&models.Restaurant{}, id).Error
}
