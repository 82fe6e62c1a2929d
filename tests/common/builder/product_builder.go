//go:build unit || e2e

package builder

import (
	"time"

	"shopcompare/internal/domain/product"

	"github.com/google/uuid"
)

// ProductBuilder builds cached products with one price point per platform.
type ProductBuilder struct {
	Name      string
	ImageURL  string
	Platforms []product.Platform
	ScrapedAt time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:      "Apple iPhone 15 (128 GB) - Black",
		ImageURL:  "https://img.example.com/iphone15.jpg",
		ScrapedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) ScrapedAtTime(t time.Time) *ProductBuilder {
	b.ScrapedAt = t
	return b
}

// WithPlatform adds an offer whose history holds the current price.
func (b *ProductBuilder) WithPlatform(name string, price float64) *ProductBuilder {
	b.Platforms = append(b.Platforms, product.Platform{
		Name:         name,
		URL:          "https://shop.example.com/" + name,
		Price:        price,
		PriceWithTax: price,
		PriceHistory: []product.PricePoint{{Price: price, Date: b.ScrapedAt}},
	})
	return b
}

func (b *ProductBuilder) Build() *product.Product {
	name := product.NormalizeName(b.Name)
	platforms := make([]product.Platform, len(b.Platforms))
	copy(platforms, b.Platforms)
	return &product.Product{
		ID:            uuid.New(),
		Name:          name,
		ImageURL:      b.ImageURL,
		Brand:         product.GuessBrand(name),
		Keywords:      product.BuildKeywords(name),
		Platforms:     platforms,
		LastScrapedAt: b.ScrapedAt,
		CreatedAt:     b.ScrapedAt,
	}
}

// Observation is what the search provider would return for one offer.
func Observation(title, store string, price float64) product.Observation {
	return product.Observation{
		Title:    title,
		Store:    store,
		URL:      "https://shop.example.com/" + store,
		Price:    price,
		ImageURL: "https://img.example.com/p.jpg",
	}
}
