package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/matfreire/food-orders-api/repositories"
)

// AccountKind identifies which of the three account tables a row lives in
type AccountKind string

const (
	AccountClient     AccountKind = "client"
	AccountRestaurant AccountKind = "restaurant"
	AccountAdmin      AccountKind = "admin"
)

// ErrEmailTaken is returned when an e-mail is already registered to another
// account in any of the three account tables.
var ErrEmailTaken = errors.New("email already registered to another account")

// AccountValidator enforces the invariant that an e-mail address belongs to
// at most one account across the client, restaurant and admin tables. The
// check must run on the same transaction as the account write, otherwise two
// concurrent registrations can both pass it.
type AccountValidator struct {
	clients     *repositories.ClientRepository
	restaurants *repositories.RestaurantRepository
	admins      *repositories.AdminRepository
}

// NewAccountValidator creates an AccountValidator over the three account repositories
func NewAccountValidator(db *gorm.DB) *AccountValidator {
	return &AccountValidator{
		clients:     repositories.NewClientRepository(db),
		restaurants: repositories.NewRestaurantRepository(db),
		admins:      repositories.NewAdminRepository(db),
	}
}

// EnsureEmailUnique returns nil only when no account holds the e-mail, or the
// only holder is the account identified by (excludeID, excludeKind), which is
// how an update keeps its own address. Any lookup failure fails the whole
// check; the write must then be refused.
func (v *AccountValidator) EnsureEmailUnique(tx *gorm.DB, email string, excludeID uint, excludeKind AccountKind) error {
	email = strings.ToLower(strings.TrimSpace(email))

	client, err := v.clients.FindByEmail(tx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if client != nil && !excluded(client.ID, AccountClient, excludeID, excludeKind) {
		return ErrEmailTaken
	}

	restaurant, err := v.restaurants.FindByEmail(tx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if restaurant != nil && !excluded(restaurant.ID, AccountRestaurant, excludeID, excludeKind) {
		return ErrEmailTaken
	}

	admin, err := v.admins.FindByEmail(tx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if admin != nil && !excluded(admin.ID, AccountAdmin, excludeID, excludeKind) {
		return ErrEmailTaken
	}

	return nil
}

func excluded(id uint, kind AccountKind, excludeID uint, excludeKind AccountKind) bool {
	return excludeID != 0 && excludeID == id && excludeKind == kind
}
