package queries

//go:generate mockgen -source=search_history.go -destination=../../../tests/mock/queries/search_history.go -package=queriesmock

import (
	"context"

	"shopcompare/internal/domain/searchhistory"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

const historyLimit = 50

var ErrHistoryOwnerRequired = errs.Mark(errs.New("User ID or session ID required"), errs.ErrValidation)

type SearchHistoryQueries interface {
	List(ctx context.Context, userID *uuid.UUID, sessionID string) ([]*SearchHistoryView, error)
}

type searchHistoryQueriesImpl struct {
	history  shared.SearchHistoryStore
	products shared.ProductStore
}

func NewSearchHistoryQueries(store shared.Store) SearchHistoryQueries {
	return &searchHistoryQueriesImpl{
		history:  store.SearchHistory(),
		products: store.Products(),
	}
}

// List prefers the user's history over the session's when both are known.
func (q *searchHistoryQueriesImpl) List(ctx context.Context, userID *uuid.UUID, sessionID string) ([]*SearchHistoryView, error) {
	var (
		entries []*searchhistory.Entry
		err     error
	)
	switch {
	case userID != nil:
		entries, err = q.history.ListByUser(ctx, *userID, historyLimit)
	case sessionID != "":
		entries, err = q.history.ListBySession(ctx, sessionID, historyLimit)
	default:
		return nil, ErrHistoryOwnerRequired
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list search history"), errs.ErrInternal)
	}

	names, err := q.productNames(ctx, entries)
	if err != nil {
		return nil, err
	}

	out := make([]*SearchHistoryView, 0, len(entries))
	for _, e := range entries {
		view := &SearchHistoryView{
			Query:     e.Query,
			Timestamp: e.Timestamp,
			ProductID: e.ProductID,
		}
		if e.ProductID != nil {
			view.ProductName = names[*e.ProductID]
		}
		out = append(out, view)
	}
	return out, nil
}

func (q *searchHistoryQueriesImpl) productNames(ctx context.Context, entries []*searchhistory.Entry) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, e := range entries {
		if e.ProductID == nil {
			continue
		}
		if _, ok := seen[*e.ProductID]; ok {
			continue
		}
		seen[*e.ProductID] = struct{}{}
		ids = append(ids, *e.ProductID)
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	products, err := q.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load history products"), errs.ErrInternal)
	}
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}
