// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's shopping cart. Each user owns at most one cart, and the
// cart exclusively owns its items.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single crop/quantity pair inside a cart. Unlike order items it
// carries no price snapshot; cart totals always use the crop's current price.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	CropID    uuid.UUID `json:"crop_id"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindItem returns the cart item with the given ID, or nil.
func (c *Cart) FindItem(itemID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}

	return nil
}

// FindItemByCrop returns the cart item referencing cropID, or nil.
func (c *Cart) FindItemByCrop(cropID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].CropID == cropID {
			return &c.Items[i]
		}
	}

	return nil
}
