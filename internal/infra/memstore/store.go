// Package memstore is an in-process document store. It backs local runs with
// STORE_DRIVER=memory and the usecase tests. Every read and write goes through
// a deep copy so callers never share state with the store.
package memstore

import (
	"context"
	"sync"

	"shopcompare/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type Store struct {
	products *ProductStore
	deals    *DealStore
	users    *UserStore
	wishlist *WishlistStore
	orders   *OrderStore
	history  *SearchHistoryStore
}

func New() *Store {
	return &Store{
		products: &ProductStore{},
		deals:    &DealStore{},
		users:    &UserStore{},
		wishlist: &WishlistStore{},
		orders:   &OrderStore{},
		history:  &SearchHistoryStore{},
	}
}

var _ shared.Store = (*Store)(nil)

func (s *Store) Products() shared.ProductStore            { return s.products }
func (s *Store) Deals() shared.DealStore                  { return s.deals }
func (s *Store) Users() shared.UserStore                  { return s.users }
func (s *Store) Wishlist() shared.WishlistStore           { return s.wishlist }
func (s *Store) Orders() shared.OrderStore                { return s.orders }
func (s *Store) SearchHistory() shared.SearchHistoryStore { return s.history }

func (s *Store) Ping(_ context.Context) error  { return nil }
func (s *Store) Close(_ context.Context) error { return nil }

var deepCopy = copier.Option{DeepCopy: true}

func clone[T any](src *T) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, deepCopy); err != nil {
		return nil, err
	}
	return &dst, nil
}

func cloneAll[T any](src []*T) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		c, err := clone(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// table is an insertion-ordered map guarded by one lock.
type table[K comparable, V any] struct {
	mu    sync.RWMutex
	order []K
	rows  map[K]*V
}

func (t *table[K, V]) get(k K) (*V, bool) {
	if t.rows == nil {
		return nil, false
	}
	v, ok := t.rows[k]
	return v, ok
}

func (t *table[K, V]) put(k K, v *V) {
	if t.rows == nil {
		t.rows = make(map[K]*V)
	}
	if _, exists := t.rows[k]; !exists {
		t.order = append(t.order, k)
	}
	t.rows[k] = v
}

func (t *table[K, V]) remove(k K) bool {
	if _, ok := t.rows[k]; !ok {
		return false
	}
	delete(t.rows, k)
	for i, key := range t.order {
		if key == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[K, V]) each(fn func(*V) bool) {
	for _, k := range t.order {
		if !fn(t.rows[k]) {
			return
		}
	}
}
