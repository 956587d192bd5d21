package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to put a crop in the cart.
type AddCartItemInput struct {
	UserID   uuid.UUID
	CropID   uuid.UUID
	Quantity float64
}

// UpdateCartItemInput changes the quantity of an existing cart item.
type UpdateCartItemInput struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	Quantity float64
}

// --- Output DTOs ---

// CartItemView pairs a cart item with its crop at the crop's current price.
type CartItemView struct {
	Item     entity.CartItem `json:"item"`
	Crop     *entity.Crop    `json:"crop"`
	Subtotal float64         `json:"subtotal"`
}

// CartView is the cart as shown to the user. Totals always reflect current
// crop prices; the snapshot happens later, at order time.
type CartView struct {
	Cart       *entity.Cart   `json:"cart"`
	Items      []CartItemView `json:"items"`
	TotalPrice float64        `json:"total_price"`
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, input *AddCartItemInput) (*CartView, error)
	UpdateItemQuantity(ctx context.Context, input *UpdateCartItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
