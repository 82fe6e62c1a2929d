package response

import (
	"time"

	"shopcompare/internal/usecase/queries"

	"github.com/google/uuid"
)

type WishlistItemResponse struct {
	ProductID          uuid.UUID          `json:"productId"`
	Title              string             `json:"title"`
	ImageURL           string             `json:"imageUrl"`
	CurrentLowestPrice float64            `json:"currentLowestPrice"`
	TargetPrice        *float64           `json:"targetPrice,omitempty"`
	TargetReached      bool               `json:"targetReached"`
	Platforms          []PlatformResponse `json:"platforms"`
	AddedAt            time.Time          `json:"addedAt"`
}

func FromWishlistViews(views []*queries.WishlistEntryView) []WishlistItemResponse {
	out := make([]WishlistItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, WishlistItemResponse{
			ProductID:          v.ProductID,
			Title:              v.Title,
			ImageURL:           v.ImageURL,
			CurrentLowestPrice: v.CurrentLowestPrice,
			TargetPrice:        v.TargetPrice,
			TargetReached:      v.TargetReached,
			Platforms:          FromPlatforms(v.Platforms),
			AddedAt:            v.AddedAt,
		})
	}
	return out
}
