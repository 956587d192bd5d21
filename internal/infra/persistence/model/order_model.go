package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Items cascade-delete with the order.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	TotalPrice      float64   `gorm:"type:decimal(12,2);not null"`
	DeliveryAddress string    `gorm:"type:text;not null"`
	DeliveryContact string    `gorm:"type:varchar(30);not null"`
	TrackingNumber  *string   `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ConfirmedAt     *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. PricePerUnit is the snapshot
// taken when the order was created.
type OrderItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CropID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     float64   `gorm:"type:decimal(12,3);not null"`
	PricePerUnit float64   `gorm:"type:decimal(12,2);not null"`
	TotalPrice   float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
