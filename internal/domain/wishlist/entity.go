package wishlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTargetPrice = errors.New("target price must be positive")

// Item is unique per (UserID, ProductID). ProductID is a weak reference.
type Item struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductID   uuid.UUID
	TargetPrice *float64
	AddedAt     time.Time
}

func NewItem(userID, productID uuid.UUID, targetPrice *float64, now time.Time) (*Item, error) {
	if targetPrice != nil && *targetPrice <= 0 {
		return nil, ErrInvalidTargetPrice
	}
	return &Item{
		ID:          uuid.New(),
		UserID:      userID,
		ProductID:   productID,
		TargetPrice: targetPrice,
		AddedAt:     now,
	}, nil
}

// TargetReached reports whether the price is at or below the user's target.
func (i *Item) TargetReached(price float64) bool {
	return i.TargetPrice != nil && price <= *i.TargetPrice
}
