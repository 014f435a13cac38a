package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
)

// AdminRepository provides access to the admins table
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates an AdminRepository bound to the given database handle
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByID returns the admin with the given id, or ErrNotFound
func (r *AdminRepository) FindByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// FindByEmail looks an admin up by e-mail on the given handle
func (r *AdminRepository) FindByEmail(tx *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := tx.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin on the given handle
func (r *AdminRepository) Create(tx *gorm.DB, admin *models.Admin) error {
	return tx.Create(admin).Error
}
