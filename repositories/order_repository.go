package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/models"
)

// OrderRepository provides access to orders and their line items. It owns
// the one place in the system where multi-statement atomicity is required:
// an order and its items are committed together or not at all.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository bound to the given database handle
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts one order plus all its line items, in input order, inside a
// single transaction. Any failure rolls the whole order back; callers never
// observe a partial order. The returned order is enriched.
func (r *OrderRepository) Create(clientID, restaurantID uint, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, errors.New("an order requires at least one item")
	}

	order := models.Order{
		ClientID:     clientID,
		RestaurantID: restaurantID,
		Status:       models.StatusPending,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(order.ID)
}

// FindByID returns the enriched order with the given id, or ErrNotFound
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.enrich(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll returns all orders, newest first, enriched
func (r *OrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.enrichAll(orders)
}

// FindByRestaurant returns a restaurant's orders, newest first, enriched
func (r *OrderRepository) FindByRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("restaurant_id = ?", restaurantID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.enrichAll(orders)
}

// FindByClient returns a client's orders, newest first, enriched
func (r *OrderRepository) FindByClient(clientID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("client_id = ?", clientID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.enrichAll(orders)
}

// UpdateStatus sets the status of one order and returns it re-enriched.
// The status must already be one of the five legal values; unparsed input
// never reaches this method.
func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, errors.New("invalid order status")
	}

	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindByID(id)
}

// CountByClient returns how many orders reference the client
func (r *OrderRepository) CountByClient(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}

// CountByRestaurant returns how many orders reference the restaurant
func (r *OrderRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

// enrich attaches the owning client and restaurant, the line items in
// insertion order, and the derived total. These are independent point reads;
// the total is recomputed on every call and never cached.
func (r *OrderRepository) enrich(order *models.Order) error {
	if err := r.db.First(&order.Client, order.ClientID).Error; err != nil {
		return err
	}
	if err := r.db.First(&order.Restaurant, order.RestaurantID).Error; err != nil {
		return err
	}
	if err := r.db.Where("order_id = ?", order.ID).Order("id ASC").Find(&order.Items).Error; err != nil {
		return err
	}
	order.TotalValue = models.OrderTotal(order.Items)
	return nil
}

func (r *OrderRepository) enrichAll(orders []models.Order) ([]models.Order, error) {
	for i := range orders {
		if err := r.enrich(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}
