package postgres

import (
	"context"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUser retrieves the user's cart with its items.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new, empty cart for the user.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "user already has a cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("cart owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// AddItem appends a new item to the cart.
func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		CartID:   item.CartID,
		CropID:   item.CropID,
		Quantity: item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCropNotFound.WrapMessage("cart item references a missing crop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateItemQuantity changes the quantity of an item within the cart.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes a single item from the cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Clear deletes every item from the user's cart. A user without a cart or
// with an already-empty cart is not an error.
func (repo *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find cart for clearing")
	}

	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartM.ID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ID:        itemM.ID,
			CartID:    itemM.CartID,
			CropID:    itemM.CropID,
			Quantity:  itemM.Quantity,
			CreatedAt: itemM.CreatedAt,
			UpdatedAt: itemM.UpdatedAt,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel for persistence.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	items := make([]model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CartItemModel{
			ID:       item.ID,
			CartID:   item.CartID,
			CropID:   item.CropID,
			Quantity: item.Quantity,
		})
	}

	return &model.CartModel{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
	}
}
