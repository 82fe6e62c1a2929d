//go:build unit

package api_test

import (
	"time"

	"shopcompare/internal/domain/deal"
)

func dealsFixture(now time.Time) []*deal.Deal {
	var out []*deal.Deal
	for _, c := range []struct {
		platform string
		cand     deal.Candidate
	}{
		{"Amazon", deal.Candidate{Name: "Sony WH-1000XM4", OriginalPrice: 1000, DealPrice: 750}},
		{"Flipkart", deal.Candidate{Name: "Nike Air Max 270", OriginalPrice: 12995, DealPrice: 8995}},
	} {
		d, err := deal.New(c.cand, c.platform, now)
		if err != nil {
			panic(err)
		}
		out = append(out, d)
	}
	return out
}
