package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
)

// ClientRepository provides access to the clients table
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a ClientRepository bound to the given database handle
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindAll returns every client ordered by name
func (r *ClientRepository) FindAll() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FindByID returns the client with the given id, or ErrNotFound
func (r *ClientRepository) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByEmail looks a client up by e-mail on the given handle, so the
// uniqueness check can run inside the same transaction as the write.
func (r *ClientRepository) FindByEmail(tx *gorm.DB, email string) (*models.Client, error) {
	var client models.Client
	if err := tx.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Create inserts a new client on the given handle
func (r *ClientRepository) Create(tx *gorm.DB, client *models.Client) error {
	return tx.Create(client).Error
}

// Update persists all fields of the client on the given handle
func (r *ClientRepository) Update(tx *gorm.DB, client *models.Client) error {
	return tx.Save(client).Error
}

// Delete removes the client with the given id
func (r *ClientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Client{}, id).Error
}
