// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Crop is a sellable unit of produce owned by exactly one farmer.
// QuantityAvailable is the single source of truth for availability; it never
// drops below zero and order items always snapshot the price at order time.
type Crop struct {
	ID                  uuid.UUID  `json:"id"`                    // The Global Unique Identifier (GUID) for the crop.
	FarmerID            uuid.UUID  `json:"farmer_id"`             // The ID of the farmer who owns this crop.
	Name                string     `json:"name"`                  // Display name, e.g. "Cherry Tomatoes".
	Description         string     `json:"description"`           // Free-form description of the crop.
	PricePerUnit        float64    `json:"price_per_unit"`        // Price for a single unit at the current moment.
	Unit                string     `json:"unit"`                  // Unit label, e.g. "kg" or "piece".
	QuantityAvailable   float64    `json:"quantity_available"`    // Remaining stock. Invariant: >= 0.
	Status              CropStatus `json:"status"`                // Lifecycle status (GROWING -> HARVESTED -> SOLD).
	PlantingDate        string     `json:"planting_date"`         // ISO date the crop was planted.
	ExpectedHarvestDate string     `json:"expected_harvest_date"` // ISO date the harvest is expected.
	ActualHarvestDate   string     `json:"actual_harvest_date"`   // ISO date the harvest actually happened. Empty until harvested.
	Temperature         *float64   `json:"temperature"`           // Latest sensor reading, nil when no sensor is attached.
	Humidity            *float64   `json:"humidity"`              // Latest sensor reading, nil when no sensor is attached.
	SoilPH              *float64   `json:"soil_ph"`               // Latest sensor reading, nil when no sensor is attached.
	Images              []string   `json:"images"`                // Ordered list of image URLs.
	IsActive            bool       `json:"is_active"`             // Soft-delete flag for delisted crops.
	CreatedAt           time.Time  `json:"created_at"`            // Timestamp of when this crop was listed.
	UpdatedAt           time.Time  `json:"updated_at"`            // Timestamp of the last modification.
}

// ConsumeStock decrements available stock by quantity and flips the status to
// SOLD when stock reaches exactly zero. The caller must have verified that
// enough stock is available.
func (c *Crop) ConsumeStock(quantity float64) {
	c.QuantityAvailable -= quantity
	if c.QuantityAvailable == 0 {
		c.Status = CropStatusSold
	}
}

// RestoreStock returns quantity to the available stock, reverting a SOLD crop
// back to HARVESTED since it is purchasable again.
func (c *Crop) RestoreStock(quantity float64) {
	c.QuantityAvailable += quantity
	if c.Status == CropStatusSold {
		c.Status = CropStatusHarvested
	}
}

// HasStock reports whether the crop can satisfy the requested quantity.
func (c *Crop) HasStock(quantity float64) bool {
	return c.QuantityAvailable >= quantity
}
