package models

import (
	"time"
)

// MenuItem represents a dish offered by a restaurant.
// Orders never reference menu items directly; line items carry their own
// description and price snapshot, so menu edits do not rewrite history.
type MenuItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index;uniqueIndex:idx_menu_restaurant_name" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	Name         string     `gorm:"not null;uniqueIndex:idx_menu_restaurant_name" json:"name"`
	Description  *string    `json:"description"`
	Price        float64    `gorm:"not null;check:price > 0" json:"price"`
	Category     string     `gorm:"not null" json:"category"`
	ImageS3Key   *string    `json:"image_s3_key"`
	ImageURL     *string    `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for image
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
