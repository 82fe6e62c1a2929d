package memstore

import (
	"context"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

type ProductStore struct {
	t table[uuid.UUID, product.Product]
}

func (s *ProductStore) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	p, ok := s.t.get(id)
	if !ok {
		return nil, infra.NotFound("product not found")
	}
	return s.copyOut(p)
}

func (s *ProductStore) FindByName(_ context.Context, name string) (*product.Product, error) {
	key := product.Key(name)

	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var found *product.Product
	s.t.each(func(p *product.Product) bool {
		if product.Key(p.Name) == key {
			found = p
			return false
		}
		return true
	})
	if found == nil {
		return nil, infra.NotFound("product not found")
	}
	return s.copyOut(found)
}

func (s *ProductStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	out := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.t.get(id); ok {
			out = append(out, p)
		}
	}
	return s.copyAll(out)
}

func (s *ProductStore) SearchByText(_ context.Context, query string) ([]*product.Product, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var matches []*product.Product
	s.t.each(func(p *product.Product) bool {
		if p.MatchesText(query) {
			matches = append(matches, p)
		}
		return true
	})
	return s.copyAll(matches)
}

func (s *ProductStore) Insert(_ context.Context, p *product.Product) error {
	c, err := clone(p)
	if err != nil {
		return infra.WrapRepoErr("failed to copy product", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	key := product.Key(p.Name)
	duplicate := false
	s.t.each(func(existing *product.Product) bool {
		duplicate = existing.ID == p.ID || product.Key(existing.Name) == key
		return !duplicate
	})
	if duplicate {
		return infra.WrapRepoErr("product already exists", nil, infra.KindDuplicateKey)
	}
	s.t.put(p.ID, c)
	return nil
}

func (s *ProductStore) Modify(_ context.Context, id uuid.UUID, fn func(*product.Product) error) (*product.Product, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	stored, ok := s.t.get(id)
	if !ok {
		return nil, infra.NotFound("product not found")
	}
	working, err := clone(stored)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy product", err)
	}
	if err := fn(working); err != nil {
		return nil, err
	}
	persisted, err := clone(working)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy product", err)
	}
	s.t.put(id, persisted)
	return working, nil
}

func (s *ProductStore) copyOut(p *product.Product) (*product.Product, error) {
	c, err := clone(p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy product", err)
	}
	return c, nil
}

func (s *ProductStore) copyAll(ps []*product.Product) ([]*product.Product, error) {
	out, err := cloneAll(ps)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy products", err)
	}
	return out, nil
}
