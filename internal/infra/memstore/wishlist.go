package memstore

import (
	"context"

	"shopcompare/internal/domain/wishlist"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

type wishlistKey struct {
	userID    uuid.UUID
	productID uuid.UUID
}

type WishlistStore struct {
	t table[wishlistKey, wishlist.Item]
}

func (s *WishlistStore) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*wishlist.Item, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	item, ok := s.t.get(wishlistKey{userID, productID})
	if !ok {
		return nil, infra.NotFound("wishlist item not found")
	}
	c, err := clone(item)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy wishlist item", err)
	}
	return c, nil
}

func (s *WishlistStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*wishlist.Item, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var items []*wishlist.Item
	s.t.each(func(i *wishlist.Item) bool {
		if i.UserID == userID {
			items = append(items, i)
		}
		return true
	})
	out, err := cloneAll(items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy wishlist items", err)
	}
	return out, nil
}

func (s *WishlistStore) Insert(_ context.Context, item *wishlist.Item) error {
	c, err := clone(item)
	if err != nil {
		return infra.WrapRepoErr("failed to copy wishlist item", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	key := wishlistKey{item.UserID, item.ProductID}
	if _, exists := s.t.get(key); exists {
		return infra.WrapRepoErr("wishlist item already exists", nil, infra.KindDuplicateKey)
	}
	s.t.put(key, c)
	return nil
}

func (s *WishlistStore) Delete(_ context.Context, userID, productID uuid.UUID) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	if !s.t.remove(wishlistKey{userID, productID}) {
		return infra.NotFound("wishlist item not found")
	}
	return nil
}
