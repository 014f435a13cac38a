package models

import (
	"time"
)

// Order represents an order placed by a client against a restaurant.
// TotalValue is never stored; it is derived from the line items on every read.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	ClientID     uint        `gorm:"not null;index" json:"client_id"`
	Client       Client      `gorm:"foreignKey:ClientID" json:"client"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID" json:"restaurant"`
	Status       OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalValue   float64     `gorm:"-" json:"total_value"` // computed field, sum over items
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item belonging to one order. Description and price are
// snapshots taken at order creation and are immutable afterwards.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderTotal computes the order total as the sum of quantity x price over
// the given line items. This is the single source of truth for order cost.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
