package models

import (
	"time"
)

// Admin represents an administrator account
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // lower-cased before storage
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
