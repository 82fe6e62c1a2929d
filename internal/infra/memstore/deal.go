package memstore

import (
	"context"
	"time"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

type DealStore struct {
	t table[uuid.UUID, deal.Deal]
}

func (s *DealStore) List(_ context.Context) ([]*deal.Deal, error) {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	var all []*deal.Deal
	s.t.each(func(d *deal.Deal) bool {
		all = append(all, d)
		return true
	})
	out, err := cloneAll(all)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy deals", err)
	}
	return out, nil
}

func (s *DealStore) InsertMany(_ context.Context, deals []*deal.Deal) error {
	copies, err := cloneAll(deals)
	if err != nil {
		return infra.WrapRepoErr("failed to copy deals", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	for _, d := range copies {
		if _, exists := s.t.get(d.ID); exists {
			return infra.WrapRepoErr("deal already exists", nil, infra.KindDuplicateKey)
		}
	}
	for _, d := range copies {
		s.t.put(d.ID, d)
	}
	return nil
}

func (s *DealStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	var expired []uuid.UUID
	s.t.each(func(d *deal.Deal) bool {
		if d.ScrapedAt.Before(cutoff) {
			expired = append(expired, d.ID)
		}
		return true
	})
	for _, id := range expired {
		s.t.remove(id)
	}
	return int64(len(expired)), nil
}
