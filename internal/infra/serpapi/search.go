package serpapi

import (
	"context"
	"strings"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/usecase/shared"
)

var _ shared.SearchProvider = (*Client)(nil)

// Search maps each usable shopping result to an observation. Results without
// a parseable price are skipped.
func (c *Client) Search(ctx context.Context, query string) ([]product.Observation, error) {
	results, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]product.Observation, 0, len(results))
	for _, r := range results {
		price, ok := r.price()
		if !ok {
			continue
		}
		obs := product.Observation{
			Title:       strings.TrimSpace(r.Title),
			Description: r.Snippet,
			ImageURL:    r.thumbnail(),
			Store:       r.Source,
			URL:         r.url(),
			Price:       price,
			Rating:      r.Rating,
			ReviewCount: r.Reviews,
			Delivery:    r.Delivery,
		}
		if old, ok := r.oldPrice(); ok {
			obs.OldPrice = old
		}
		out = append(out, obs)
	}
	return out, nil
}
