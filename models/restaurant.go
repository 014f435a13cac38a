package models

import (
	"time"
)

// Restaurant represents a restaurant account that owns a menu and receives orders
type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"` // lower-cased before storage
	Phone       string    `gorm:"not null" json:"phone"`
	Address     string    `gorm:"not null" json:"address"`
	CuisineType string    `gorm:"not null" json:"cuisine_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}
