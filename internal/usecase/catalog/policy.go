// Package catalog owns the cached product and deal documents. It decides when
// the cache is fresh enough to answer and when to go to the provider.
package catalog

import (
	"strings"
	"time"

	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/errs"
)

// Policy holds one freshness window per cached resource.
type Policy struct {
	ProductFreshness time.Duration
	DealRecent       time.Duration
	DealRetention    time.Duration
}

func NewPolicy(cfg config.CacheConfig) Policy {
	return Policy{
		ProductFreshness: cfg.ProductFreshness,
		DealRecent:       cfg.DealRecent,
		DealRetention:    cfg.DealRetention,
	}
}

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

var (
	ErrEmptyQuery      = errs.Mark(errs.New("search query is required"), errs.ErrValidation)
	ErrInvalidSort     = errs.Mark(errs.New("sort must be price_asc or price_desc"), errs.ErrValidation)
	ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)
)

func ParseSort(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone:
		return SortNone, nil
	case SortPriceAsc:
		return SortPriceAsc, nil
	case SortPriceDesc:
		return SortPriceDesc, nil
	default:
		return SortNone, ErrInvalidSort
	}
}

// ParsePlatformFilter splits a comma-separated allow-list. Entries are trimmed
// and lowercased; blanks are dropped.
func ParsePlatformFilter(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
