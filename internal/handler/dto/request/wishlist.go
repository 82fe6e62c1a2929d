package request

import "github.com/google/uuid"

type AddWishlistItemRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	TargetPrice *float64  `json:"targetPrice,omitempty" binding:"omitempty,gt=0"`
	// Accepted for client compatibility; the product record already knows its offers.
	ProductURL string `json:"productUrl,omitempty"`
	Platform   string `json:"platform,omitempty"`
}
