// Package dealfeed provides deal candidates from a curated product list.
package dealfeed

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/usecase/shared"
)

type catalogItem struct {
	name          string
	originalPrice float64
	dealPrice     float64
}

var catalog = []catalogItem{
	{name: "Samsung Galaxy S24", originalPrice: 79999, dealPrice: 59999},
	{name: "iPhone 15 Pro", originalPrice: 134900, dealPrice: 119900},
	{name: "MacBook Air M2", originalPrice: 114900, dealPrice: 104900},
	{name: "Sony WH-1000XM4", originalPrice: 29990, dealPrice: 19990},
	{name: "Nike Air Max 270", originalPrice: 12995, dealPrice: 8995},
}

const (
	minPerPlatform = 2
	maxPerPlatform = 4
)

// CatalogSource picks between two and four catalog items per platform. The
// pick only changes with the platform and the calendar day.
type CatalogSource struct {
	clock clock.Clock
}

func NewCatalogSource(clk clock.Clock) *CatalogSource {
	return &CatalogSource{clock: clk}
}

var _ shared.DealSource = (*CatalogSource)(nil)

func (s *CatalogSource) FetchDeals(_ context.Context, platform string) ([]deal.Candidate, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(platform) + "|" + s.clock.Now().Format("2006-01-02")))
	seed := int(h.Sum32() & 0x7fffffff)

	count := minPerPlatform + seed%(maxPerPlatform-minPerPlatform+1)
	offset := (seed / 7) % len(catalog)

	out := make([]deal.Candidate, 0, count)
	for i := 0; i < count; i++ {
		item := catalog[(offset+i)%len(catalog)]
		out = append(out, deal.Candidate{
			Name:          item.name,
			ImageURL:      "https://via.placeholder.com/300x300?text=" + url.QueryEscape(item.name),
			OriginalPrice: item.originalPrice,
			DealPrice:     item.dealPrice,
			ProductURL:    productURL(platform, item.name),
		})
	}
	return out, nil
}

func productURL(platform, name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return fmt.Sprintf("https://%s.com/product/%s", strings.ToLower(platform), slug)
}
