package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
)

// MenuRepository provides access to a restaurant's menu items
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a MenuRepository bound to the given database handle
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindByRestaurant returns all menu items of a restaurant ordered by category
func (r *MenuRepository) FindByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("restaurant_id = ?", restaurantID).Order("category ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns the menu item with the given id, or ErrNotFound
func (r *MenuRepository) FindByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByNameInRestaurant looks a menu item up by exact name within a
// restaurant, skipping excludeID so an item may keep its own name on update.
func (r *MenuRepository) FindByNameInRestaurant(restaurantID uint, name string, excludeID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	query := r.db.Where("restaurant_id = ? AND name = ?", restaurantID, name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new menu item
func (r *MenuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update persists all fields of the menu item
func (r *MenuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// Delete removes the menu item with the given id
func (r *MenuRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
