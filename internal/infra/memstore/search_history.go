package memstore

import (
	"context"
	"sort"

	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/infra"

	"github.com/google/uuid"
)

type SearchHistoryStore struct {
	t table[uuid.UUID, searchhistory.Entry]
}

func (s *SearchHistoryStore) Insert(_ context.Context, e *searchhistory.Entry) error {
	c, err := clone(e)
	if err != nil {
		return infra.WrapRepoErr("failed to copy search history entry", err)
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	s.t.put(e.ID, c)
	return nil
}

func (s *SearchHistoryStore) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*searchhistory.Entry, error) {
	return s.list(func(e *searchhistory.Entry) bool {
		return e.UserID != nil && *e.UserID == userID
	}, limit)
}

func (s *SearchHistoryStore) ListBySession(_ context.Context, sessionID string, limit int) ([]*searchhistory.Entry, error) {
	return s.list(func(e *searchhistory.Entry) bool {
		return e.UserID == nil && e.SessionID == sessionID
	}, limit)
}

func (s *SearchHistoryStore) list(match func(*searchhistory.Entry) bool, limit int) ([]*searchhistory.Entry, error) {
	s.t.mu.RLock()
	var entries []*searchhistory.Entry
	s.t.each(func(e *searchhistory.Entry) bool {
		if match(e) {
			entries = append(entries, e)
		}
		return true
	})
	out, err := cloneAll(entries)
	s.t.mu.RUnlock()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to copy search history", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
