package response

import (
	"time"

	"shopcompare/internal/domain/order"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           string     `json:"orderId"`
	ProductName       string     `json:"productName"`
	Platform          string     `json:"platform"`
	PurchaseDate      time.Time  `json:"purchaseDate"`
	Status            string     `json:"status"`
	OrderURL          string     `json:"orderUrl"`
	LastStatusCheckAt *time.Time `json:"lastStatusCheckAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

type RefreshStatusResponse struct {
	Message   string `json:"message"`
	NewStatus string `json:"newStatus"`
}

func FromOrder(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		OrderID:           o.OrderID,
		ProductName:       o.ProductName,
		Platform:          o.Platform,
		PurchaseDate:      o.PurchaseDate,
		Status:            o.Status,
		OrderURL:          o.OrderURL,
		LastStatusCheckAt: o.LastStatusCheckAt,
		CreatedAt:         o.CreatedAt,
	}
}

func FromOrders(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
