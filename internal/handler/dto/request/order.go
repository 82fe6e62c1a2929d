package request

import (
	"strings"
	"time"

	"shopcompare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	OrderID      string     `json:"orderId" binding:"required"`
	ProductName  string     `json:"productName" binding:"required"`
	Platform     string     `json:"platform" binding:"required"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	OrderURL     string     `json:"orderUrl" binding:"required,url"`
}

func (r CreateOrderRequest) ToInput(userID uuid.UUID) commands.CreateOrderInput {
	in := commands.CreateOrderInput{
		UserID:      userID,
		OrderID:     strings.TrimSpace(r.OrderID),
		ProductName: strings.TrimSpace(r.ProductName),
		Platform:    strings.TrimSpace(r.Platform),
		OrderURL:    strings.TrimSpace(r.OrderURL),
	}
	if r.PurchaseDate != nil {
		in.PurchaseDate = *r.PurchaseDate
	}
	return in
}
