package serpapi

import (
	"context"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/usecase/shared"
)

const maxDealsPerPlatform = 4

// DealSource asks the provider for "<platform> deals" and keeps the
// discounted offers.
type DealSource struct {
	client *Client
}

func NewDealSource(client *Client) *DealSource {
	return &DealSource{client: client}
}

var _ shared.DealSource = (*DealSource)(nil)

func (s *DealSource) FetchDeals(ctx context.Context, platform string) ([]deal.Candidate, error) {
	results, err := s.client.fetch(ctx, platform+" deals")
	if err != nil {
		return nil, err
	}

	var out []deal.Candidate
	for _, r := range results {
		price, ok := r.price()
		if !ok {
			continue
		}
		old, ok := r.oldPrice()
		if !ok || old <= price {
			continue
		}
		out = append(out, deal.Candidate{
			Name:          r.Title,
			ImageURL:      r.thumbnail(),
			OriginalPrice: old,
			DealPrice:     price,
			ProductURL:    r.url(),
		})
		if len(out) == maxDealsPerPlatform {
			break
		}
	}
	return out, nil
}
