//go:build unit || e2e

package builder

import (
	"time"

	"shopcompare/internal/domain/order"
	reqdto "shopcompare/internal/handler/dto/request"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID       uuid.UUID
	OrderID      string
	ProductName  string
	Platform     string
	PurchaseDate time.Time
	OrderURL     string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID:       uuid.New(),
		OrderID:      "OD-1001",
		ProductName:  "Sony WH-1000XM4",
		Platform:     "Amazon",
		PurchaseDate: time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
		OrderURL:     "https://www.amazon.in/gp/your-account/order-details?orderID=OD-1001",
	}
}

func (b *OrderBuilder) ForUser(id uuid.UUID) *OrderBuilder {
	b.UserID = id
	return b
}

func (b *OrderBuilder) PurchasedAt(t time.Time) *OrderBuilder {
	b.PurchaseDate = t
	return b
}

func (b *OrderBuilder) WithURL(u string) *OrderBuilder {
	b.OrderURL = u
	return b
}

func (b *OrderBuilder) Build(now time.Time) *order.Order {
	o, err := order.New(order.NewOrderParams{
		UserID:       b.UserID,
		OrderID:      b.OrderID,
		ProductName:  b.ProductName,
		Platform:     b.Platform,
		PurchaseDate: b.PurchaseDate,
		OrderURL:     b.OrderURL,
	}, now)
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OrderBuilder) BuildDTO() reqdto.CreateOrderRequest {
	purchase := b.PurchaseDate
	return reqdto.CreateOrderRequest{
		OrderID:      b.OrderID,
		ProductName:  b.ProductName,
		Platform:     b.Platform,
		PurchaseDate: &purchase,
		OrderURL:     b.OrderURL,
	}
}
