package response

import (
	"time"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/usecase/catalog"

	"github.com/google/uuid"
)

type PricePointResponse struct {
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

type PlatformResponse struct {
	Name         string               `json:"name"`
	URL          string               `json:"url"`
	Price        float64              `json:"price"`
	Discount     float64              `json:"discount"`
	PriceWithTax float64              `json:"priceWithTax"`
	DeliveryInfo string               `json:"deliveryInfo,omitempty"`
	SellerRating *float64             `json:"sellerRating,omitempty"`
	PriceHistory []PricePointResponse `json:"priceHistory"`
}

type ProductResponse struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	ImageURL          string             `json:"imageUrl"`
	Brand             string             `json:"brand"`
	Rating            *float64           `json:"rating,omitempty"`
	ReviewCount       int                `json:"reviewCount"`
	Features          []string           `json:"features"`
	Platforms         []PlatformResponse `json:"platforms"`
	LastScrapedAt     time.Time          `json:"lastScrapedAt"`
	LastPriceChangeAt *time.Time         `json:"lastPriceChangeAt,omitempty"`
}

// ProductSearchItem is a product as listed in search results.
type ProductSearchItem struct {
	ProductResponse
	LowestPrice float64 `json:"lowestPrice"`
	BestValue   bool    `json:"bestValue"`
}

func FromPlatforms(platforms []product.Platform) []PlatformResponse {
	out := make([]PlatformResponse, 0, len(platforms))
	for _, pl := range platforms {
		history := make([]PricePointResponse, 0, len(pl.PriceHistory))
		for _, pp := range pl.PriceHistory {
			history = append(history, PricePointResponse{Price: pp.Price, Date: pp.Date})
		}
		out = append(out, PlatformResponse{
			Name:         pl.Name,
			URL:          pl.URL,
			Price:        pl.Price,
			Discount:     pl.Discount,
			PriceWithTax: pl.PriceWithTax,
			DeliveryInfo: pl.DeliveryInfo,
			SellerRating: pl.SellerRating,
			PriceHistory: history,
		})
	}
	return out
}

func FromProduct(p *product.Product) *ProductResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Brand:             p.Brand,
		Rating:            p.Rating,
		ReviewCount:       p.ReviewCount,
		Features:          features,
		Platforms:         FromPlatforms(p.Platforms),
		LastScrapedAt:     p.LastScrapedAt,
		LastPriceChangeAt: p.LastPriceChangeAt,
	}
}

func FromProductResults(results []*catalog.ProductResult) []ProductSearchItem {
	out := make([]ProductSearchItem, 0, len(results))
	for _, r := range results {
		out = append(out, ProductSearchItem{
			ProductResponse: *FromProduct(r.Product),
			LowestPrice:     r.LowestPrice,
			BestValue:       r.BestValue,
		})
	}
	return out
}
