package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

import (
	"context"
	"sort"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderQueries interface {
	List(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
}

type orderQueriesImpl struct {
	orders shared.OrderStore
}

func NewOrderQueries(store shared.Store) OrderQueries {
	return &orderQueriesImpl{orders: store.Orders()}
}

// List returns the most recent purchase first.
func (q *orderQueriesImpl) List(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	orders, err := q.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list orders"), errs.ErrInternal)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PurchaseDate.After(orders[j].PurchaseDate)
	})
	if orders == nil {
		orders = []*order.Order{}
	}
	return orders, nil
}
