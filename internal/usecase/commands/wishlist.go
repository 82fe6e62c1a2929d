package commands

//go:generate mockgen -source=wishlist.go -destination=../../../tests/mock/commands/wishlist.go -package=commandsmock

import (
	"context"
	"log/slog"

	"shopcompare/internal/domain/wishlist"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errs.Mark(errs.New("Product not found"), errs.ErrNotFound)
	ErrAlreadyInWishlist = errs.Mark(errs.New("Product already in wishlist"), errs.ErrConflict)
	ErrNotInWishlist     = errs.Mark(errs.New("Product not found in wishlist"), errs.ErrNotFound)
)

type WishlistCommands interface {
	Add(ctx context.Context, userID, productID uuid.UUID, targetPrice *float64) (*wishlist.Item, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type wishlistCommandsImpl struct {
	products shared.ProductStore
	wishlist shared.WishlistStore
	clock    clock.Clock
}

func NewWishlistCommands(store shared.Store, clk clock.Clock) WishlistCommands {
	return &wishlistCommandsImpl{
		products: store.Products(),
		wishlist: store.Wishlist(),
		clock:    clk,
	}
}

func (c *wishlistCommandsImpl) Add(ctx context.Context, userID, productID uuid.UUID, targetPrice *float64) (*wishlist.Item, error) {
	if _, err := c.products.FindByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "find product"), errs.ErrInternal)
	}

	item, err := wishlist.NewItem(userID, productID, targetPrice, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	// The store's unique (user, product) constraint decides races.
	if err := c.wishlist.Insert(ctx, item); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, errs.Mark(errs.Wrap(err, "insert wishlist item"), errs.ErrInternal)
	}

	slog.Info("added product to wishlist", "user_id", userID, "product_id", productID)
	return item, nil
}

func (c *wishlistCommandsImpl) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := c.wishlist.Delete(ctx, userID, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotInWishlist
		}
		return errs.Mark(errs.Wrap(err, "delete wishlist item"), errs.ErrInternal)
	}
	return nil
}
