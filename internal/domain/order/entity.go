package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"

	// StatusUnavailable is reported when the order page could not be read.
	StatusUnavailable = "Status unavailable"
)

// Most advanced first: a page mentioning both "Shipped" and "Delivered" is
// delivered.
var detectionOrder = []string{
	StatusDelivered,
	StatusOutForDelivery,
	StatusShipped,
	StatusConfirmed,
	StatusPending,
}

var (
	ErrMissingOrderID     = errors.New("order id is required")
	ErrMissingProductName = errors.New("product name is required")
	ErrMissingPlatform    = errors.New("platform is required")
	ErrInvalidOrderURL    = errors.New("order url must be an http(s) url")
)

type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	OrderID           string
	ProductName       string
	Platform          string
	PurchaseDate      time.Time
	Status            string
	OrderURL          string
	LastStatusCheckAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type NewOrderParams struct {
	UserID       uuid.UUID
	OrderID      string
	ProductName  string
	Platform     string
	PurchaseDate time.Time
	OrderURL     string
}

func New(p NewOrderParams, now time.Time) (*Order, error) {
	switch {
	case strings.TrimSpace(p.OrderID) == "":
		return nil, ErrMissingOrderID
	case strings.TrimSpace(p.ProductName) == "":
		return nil, ErrMissingProductName
	case strings.TrimSpace(p.Platform) == "":
		return nil, ErrMissingPlatform
	case !strings.HasPrefix(p.OrderURL, "http://") && !strings.HasPrefix(p.OrderURL, "https://"):
		return nil, ErrInvalidOrderURL
	}

	purchase := p.PurchaseDate
	if purchase.IsZero() {
		purchase = now
	}

	return &Order{
		ID:           uuid.New(),
		UserID:       p.UserID,
		OrderID:      strings.TrimSpace(p.OrderID),
		ProductName:  strings.TrimSpace(p.ProductName),
		Platform:     strings.TrimSpace(p.Platform),
		PurchaseDate: purchase,
		Status:       StatusPending,
		OrderURL:     p.OrderURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ApplyStatus records the outcome of a status check.
func (o *Order) ApplyStatus(status string, now time.Time) {
	o.Status = status
	o.LastStatusCheckAt = &now
	o.UpdatedAt = now
}

func (o *Order) OwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// DetectStatus finds the most advanced known status mentioned in page text.
func DetectStatus(pageText string) string {
	text := strings.ToLower(pageText)
	for _, s := range detectionOrder {
		if strings.Contains(text, strings.ToLower(s)) {
			return s
		}
	}
	return StatusUnavailable
}
