package shared

//go:generate mockgen -source=external.go -destination=../../../tests/mock/shared/external.go -package=sharedmock

import (
	"context"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/domain/product"
)

// SearchProvider is the external shopping search. Failures are marked with
// errs.ErrUpstream; a payload without results is an empty slice, not an error.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]product.Observation, error)
}

// DealSource yields a small batch of deal candidates for one platform.
type DealSource interface {
	FetchDeals(ctx context.Context, platform string) ([]deal.Candidate, error)
}

// OrderStatusScraper reads an order page and returns one of the order.Status*
// values.
type OrderStatusScraper interface {
	Scrape(ctx context.Context, orderURL string) (string, error)
}

// CacheObserver receives cache outcomes for metrics.
type CacheObserver interface {
	CacheLookup(resource string, hit bool)
	DealsRefreshed(count int)
	ProviderFallback(resource string)
}
