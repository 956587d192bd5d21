package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CropModel mirrors the 'crops' table. The database enforces the
// non-negative-stock invariant with a CHECK constraint as a last line of
// defense behind the transactional stock logic.
type CropModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                string    `gorm:"type:varchar(100);not null;index"`
	Description         string    `gorm:"type:text"`
	PricePerUnit        float64   `gorm:"type:decimal(12,2);not null"`
	Unit                string    `gorm:"type:varchar(20);not null"`
	QuantityAvailable   float64   `gorm:"type:decimal(12,3);not null;check:quantity_available >= 0"`
	Status              string    `gorm:"type:varchar(20);not null;index"`
	PlantingDate        string    `gorm:"type:varchar(30)"`
	ExpectedHarvestDate string    `gorm:"type:varchar(30)"`
	ActualHarvestDate   *string   `gorm:"type:varchar(30)"`
	Temperature         *float64  `gorm:"type:decimal(6,2)"`
	Humidity            *float64  `gorm:"type:decimal(6,2)"`
	SoilPH              *float64  `gorm:"type:decimal(4,2)"`
	Images              datatypes.JSONSlice[string]
	IsActive            bool `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}
