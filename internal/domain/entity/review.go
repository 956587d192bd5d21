// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a crop, tied one-to-one to the delivered
// order it came from.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`  // The reviewing customer.
	CropID    uuid.UUID `json:"crop_id"`  // The crop being reviewed.
	OrderID   uuid.UUID `json:"order_id"` // The delivered order that makes this review eligible.
	Rating    float64   `json:"rating"`   // Star rating in [1, 5].
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MinRating and MaxRating bound the accepted star rating.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// IsValidRating reports whether rating falls within the accepted range.
func IsValidRating(rating float64) bool {
	return rating >= MinRating && rating <= MaxRating
}
