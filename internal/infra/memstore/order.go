package memstore

import (
	"context"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

type OrderStore struct {
	t table[uuid.UUID, order.Order]
}

func (s *OrderStore) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	o, ok := s.t.get(id)
	if !ok {
		return nil, infra.NotFound("order not found")
	}
	c, err := clone(o)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy order", err)
	}
	return c, nil
}

func (s *OrderStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*order.Order, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var orders []*order.Order
	s.t.each(func(o *order.Order) bool {
		if o.UserID == userID {
			orders = append(orders, o)
		}
		return true
	})
	out, err := cloneAll(orders)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy orders", err)
	}
	return out, nil
}

func (s *OrderStore) Insert(_ context.Context, o *order.Order) error {
	c, err := clone(o)
	if err != nil {
		return infra.WrapRepoErr("failed to copy order", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	if _, exists := s.t.get(o.ID); exists {
		return infra.WrapRepoErr("order already exists", nil, infra.KindDuplicateKey)
	}
	s.t.put(o.ID, c)
	return nil
}

func (s *OrderStore) Update(_ context.Context, o *order.Order) error {
	c, err := clone(o)
	if err != nil {
		return infra.WrapRepoErr("failed to copy order", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	if _, ok := s.t.get(o.ID); !ok {
		return infra.NotFound("order not found")
	}
	s.t.put(o.ID, c)
	return nil
}

func (s *OrderStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	o, ok := s.t.get(id)
	if !ok || o.UserID != userID {
		return infra.NotFound("order not found")
	}
	s.t.remove(id)
	return nil
}
