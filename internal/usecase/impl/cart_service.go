package impl

import (
	"context"
	"log/slog"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Carts never hold price
// snapshots; every view recomputes totals from the crops' current prices.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	cropRepo  repository.CropRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	CropRepo  repository.CropRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		cropRepo:  params.CropRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart loads the user's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.loadOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.buildCartView(ctx, cart)
}

// AddItem puts a crop in the cart. Adding a crop already present merges the
// quantities into the existing line.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("userID", input.UserID), slog.Any("cropID", input.CropID))

	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
	}

	crop, err := srv.cropRepo.FindByID(ctx, input.CropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to load crop for cart")
	}
	if !crop.IsActive {
		return nil, domainerrors.ErrCropNotFound.WrapMessage("crop is no longer listed")
	}
	if !crop.HasStock(input.Quantity) {
		return nil, domainerrors.NewInsufficientStockError(crop.ID, crop.Name, input.Quantity, crop.QuantityAvailable)
	}

	var cart *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		current, err := srv.loadOrCreateCartWith(ctx, cartRepo, input.UserID)
		if err != nil {
			return err
		}

		if existing := current.FindItemByCrop(input.CropID); existing != nil {
			// Merging must not let the line grow past the available stock.
			merged := existing.Quantity + input.Quantity
			if !crop.HasStock(merged) {
				return domainerrors.NewInsufficientStockError(crop.ID, crop.Name, merged, crop.QuantityAvailable)
			}

			if err := cartRepo.UpdateItemQuantity(ctx, current.ID, existing.ID, merged); err != nil {
				return errors.Wrap(err, "failed to merge cart item quantity")
			}
		} else {
			item := &entity.CartItem{
				CartID:   current.ID,
				CropID:   input.CropID,
				Quantity: input.Quantity,
			}
			if err := cartRepo.AddItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to add cart item")
			}
		}

		refreshed, err := cartRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart")
		}
		cart = refreshed

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return srv.buildCartView(ctx, cart)
}

// UpdateItemQuantity changes the quantity of an existing cart line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, input *usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
	}

	cart, err := srv.loadCart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(input.ItemID)
	if item == nil {
		return nil, domainerrors.ErrCartItemNotFound
	}

	crop, err := srv.cropRepo.FindByID(ctx, item.CropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to load crop for cart item")
	}
	if !crop.HasStock(input.Quantity) {
		return nil, domainerrors.NewInsufficientStockError(crop.ID, crop.Name, input.Quantity, crop.QuantityAvailable)
	}

	if err := srv.cartRepo.UpdateItemQuantity(ctx, cart.ID, input.ItemID, input.Quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	refreshed, err := srv.loadCart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return srv.buildCartView(ctx, refreshed)
}

// RemoveItem deletes a single line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	refreshed, err := srv.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.buildCartView(ctx, refreshed)
}

// ClearCart removes every line from the user's cart. Called by the order
// handler after a successful checkout.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) loadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) loadOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return srv.loadOrCreateCartWith(ctx, srv.cartRepo, userID)
}

func (srv *cartService) loadOrCreateCartWith(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	newCart := &entity.Cart{UserID: userID}
	if err := cartRepo.Create(ctx, newCart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return newCart, nil
}

// buildCartView joins cart lines with their crops and computes totals at
// current prices. Lines whose crop disappeared are skipped rather than
// failing the whole view.
func (srv *cartService) buildCartView(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{
		Cart:  cart,
		Items: make([]usecase.CartItemView, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		crop, err := srv.cropRepo.FindByID(ctx, item.CropID)
		if err != nil {
			if errors.Is(err, repository.ErrCropNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load crop for cart view")
		}

		subtotal := item.Quantity * crop.PricePerUnit
		view.Items = append(view.Items, usecase.CartItemView{
			Item:     item,
			Crop:     crop,
			Subtotal: subtotal,
		})
		view.TotalPrice += subtotal
	}

	return view, nil
}
