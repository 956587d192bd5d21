// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a consumer's purchase of one or more crop line items from a single
// farmer. The order exclusively owns its items; they are persisted and deleted
// together with it.
type Order struct {
	ID              uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the order.
	ConsumerID      uuid.UUID   `json:"consumer_id"`      // The customer who placed the order.
	FarmerID        uuid.UUID   `json:"farmer_id"`        // The farmer fulfilling the order.
	Status          OrderStatus `json:"status"`           // Current position in the order state machine.
	TotalPrice      float64     `json:"total_price"`      // Sum of all item totals, computed at creation time.
	DeliveryAddress string      `json:"delivery_address"` // Where the order ships to.
	DeliveryContact string      `json:"delivery_contact"` // Contact number for the delivery.
	TrackingNumber  string      `json:"tracking_number"`  // Optional carrier tracking number, attached when shipped.
	Items           []OrderItem `json:"items"`            // The price-snapshotted line items.
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	ConfirmedAt     *time.Time  `json:"confirmed_at"` // Stamped when the order enters CONFIRMED.
	ShippedAt       *time.Time  `json:"shipped_at"`   // Stamped when the order enters SHIPPED.
	DeliveredAt     *time.Time  `json:"delivered_at"` // Stamped when the order enters DELIVERED.
	CancelledAt     *time.Time  `json:"cancelled_at"` // Stamped when the order enters CANCELLED.
}

// OrderItem is a single line entry within an order. PricePerUnit captures the
// crop's price at order time and is independent of later price changes.
type OrderItem struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	CropID       uuid.UUID `json:"crop_id"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"price_per_unit"` // Price snapshot taken when the order was created.
	TotalPrice   float64   `json:"total_price"`    // Quantity * PricePerUnit.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CalculateTotalPrice recomputes the sum of all line item totals.
func (o *Order) CalculateTotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice
	}

	return total
}
