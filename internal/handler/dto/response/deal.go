package response

import (
	"time"

	"shopcompare/internal/domain/deal"

	"github.com/google/uuid"
)

type DealResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	ImageURL           string    `json:"imageUrl"`
	OriginalPrice      float64   `json:"originalPrice"`
	DealPrice          float64   `json:"dealPrice"`
	DiscountPercentage int       `json:"discountPercentage"`
	Platform           string    `json:"platform"`
	ProductURL         string    `json:"productUrl"`
	ScrapedAt          time.Time `json:"scrapedAt"`
}

func FromDeals(deals []*deal.Deal) []DealResponse {
	out := make([]DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, DealResponse{
			ID:                 d.ID,
			Name:               d.Name,
			ImageURL:           d.ImageURL,
			OriginalPrice:      d.OriginalPrice,
			DealPrice:          d.DealPrice,
			DiscountPercentage: d.DiscountPercentage,
			Platform:           d.Platform,
			ProductURL:         d.ProductURL,
			ScrapedAt:          d.ScrapedAt,
		})
	}
	return out
}
