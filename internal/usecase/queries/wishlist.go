package queries

//go:generate mockgen -source=wishlist.go -destination=../../../tests/mock/queries/wishlist.go -package=queriesmock

import (
	"context"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistQueries interface {
	List(ctx context.Context, userID uuid.UUID) ([]*WishlistEntryView, error)
}

type wishlistQueriesImpl struct {
	wishlist shared.WishlistStore
	products shared.ProductStore
}

func NewWishlistQueries(store shared.Store) WishlistQueries {
	return &wishlistQueriesImpl{
		wishlist: store.Wishlist(),
		products: store.Products(),
	}
}

// List skips items whose product has left the cache.
func (q *wishlistQueriesImpl) List(ctx context.Context, userID uuid.UUID) ([]*WishlistEntryView, error) {
	items, err := q.wishlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list wishlist"), errs.ErrInternal)
	}
	if len(items) == 0 {
		return []*WishlistEntryView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := q.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load wishlist products"), errs.ErrInternal)
	}
	byID := make(map[uuid.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]*WishlistEntryView, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lowest, priced := p.LowestPrice()
		out = append(out, &WishlistEntryView{
			ProductID:          p.ID,
			Title:              p.Name,
			ImageURL:           p.ImageURL,
			CurrentLowestPrice: lowest,
			TargetPrice:        item.TargetPrice,
			TargetReached:      priced && item.TargetReached(lowest),
			Platforms:          p.Platforms,
			AddedAt:            item.AddedAt,
		})
	}
	return out, nil
}
