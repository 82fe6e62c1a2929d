package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

import (
	"context"
	"log/slog"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.Mark(errs.New("Order not found"), errs.ErrNotFound)

type OrderCommands interface {
	Create(ctx context.Context, in CreateOrderInput) (*order.Order, error)
	RefreshStatus(ctx context.Context, userID, id uuid.UUID) (*order.Order, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type orderCommandsImpl struct {
	orders  shared.OrderStore
	scraper shared.OrderStatusScraper
	clock   clock.Clock
}

func NewOrderCommands(store shared.Store, scraper shared.OrderStatusScraper, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		orders:  store.Orders(),
		scraper: scraper,
		clock:   clk,
	}
}

// Create stores the order as Pending unless the first scrape finds a real
// status.
func (c *orderCommandsImpl) Create(ctx context.Context, in CreateOrderInput) (*order.Order, error) {
	o, err := order.New(order.NewOrderParams{
		UserID:       in.UserID,
		OrderID:      in.OrderID,
		ProductName:  in.ProductName,
		Platform:     in.Platform,
		PurchaseDate: in.PurchaseDate,
		OrderURL:     in.OrderURL,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	status, err := c.scraper.Scrape(ctx, o.OrderURL)
	if err != nil {
		slog.Warn("initial order status scrape failed", "order_id", o.OrderID, "error", err)
	}
	if status != "" && status != order.StatusUnavailable {
		o.ApplyStatus(status, c.clock.Now())
	}

	if err := c.orders.Insert(ctx, o); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "insert order"), errs.ErrInternal)
	}
	slog.Info("order added for tracking", "user_id", o.UserID, "order_id", o.OrderID, "status", o.Status)
	return o, nil
}

// RefreshStatus always records the check, including an unavailable page.
func (c *orderCommandsImpl) RefreshStatus(ctx context.Context, userID, id uuid.UUID) (*order.Order, error) {
	o, err := c.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "find order"), errs.ErrInternal)
	}
	if !o.OwnedBy(userID) {
		return nil, ErrOrderNotFound
	}

	status, err := c.scraper.Scrape(ctx, o.OrderURL)
	if err != nil {
		slog.Warn("order status scrape failed", "order_id", o.OrderID, "error", err)
		status = order.StatusUnavailable
	}
	o.ApplyStatus(status, c.clock.Now())

	if err := c.orders.Update(ctx, o); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "update order"), errs.ErrInternal)
	}
	return o, nil
}

func (c *orderCommandsImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := c.orders.Delete(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(errs.Wrap(err, "delete order"), errs.ErrInternal)
	}
	return nil
}
