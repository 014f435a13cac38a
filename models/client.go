package models

import (
	"time"
)

// Client represents a customer account that places orders
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // lower-cased before storage
	Phone     string    `gorm:"not null" json:"phone"`             // digits only, 10-15
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
