package catalog

//go:generate mockgen -source=products.go -destination=../../../tests/mock/catalog/products.go -package=catalogmock

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"shopcompare/internal/domain/product"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const resourceProduct = "product"

type SearchParams struct {
	Query     string
	Sort      SortOrder
	Platforms []string
}

type ProductResult struct {
	Product     *product.Product
	LowestPrice float64
	BestValue   bool
}

type ProductSearch interface {
	SearchProducts(ctx context.Context, params SearchParams) ([]*ProductResult, error)
	GetProductDetails(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type productSearchImpl struct {
	products shared.ProductStore
	provider shared.SearchProvider
	clock    clock.Clock
	observer shared.CacheObserver
	policy   Policy

	misses singleflight.Group
}

func NewProductSearch(store shared.Store, provider shared.SearchProvider, clk clock.Clock, observer shared.CacheObserver, policy Policy) ProductSearch {
	return &productSearchImpl{
		products: store.Products(),
		provider: provider,
		clock:    clk,
		observer: observer,
		policy:   policy,
	}
}

// SearchProducts answers from the cache when at least one match is fresh.
// Otherwise it scrapes the provider once and reconciles the results into the
// cache. Concurrent misses for the same query share one scrape.
func (uc *productSearchImpl) SearchProducts(ctx context.Context, params SearchParams) ([]*ProductResult, error) {
	query := product.NormalizeName(params.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	matches, err := uc.products.SearchByText(ctx, query)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "search cached products"), errs.ErrInternal)
	}

	now := uc.clock.Now()
	fresh := make([]*product.Product, 0, len(matches))
	for _, p := range matches {
		if p.IsFresh(now, uc.policy.ProductFreshness) {
			fresh = append(fresh, p)
		}
	}

	if len(fresh) > 0 {
		uc.observer.CacheLookup(resourceProduct, true)
		return present(fresh, params), nil
	}
	uc.observer.CacheLookup(resourceProduct, false)

	// The scrape outlives a cancelled caller so the other waiters still get it.
	v, err, _ := uc.misses.Do(product.Key(query), func() (any, error) {
		return uc.scrape(context.WithoutCancel(ctx), query)
	})
	if err != nil {
		return nil, err
	}
	scraped, _ := v.([]*product.Product)
	return present(scraped, params), nil
}

// GetProductDetails records one observation of every platform's current price.
func (uc *productSearchImpl) GetProductDetails(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := uc.products.Modify(ctx, id, func(p *product.Product) error {
		p.RecordObservation(uc.clock.Now())
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "record product observation"), errs.ErrInternal)
	}
	return p, nil
}

// scrape degrades provider failures to an empty result; store failures are
// returned.
func (uc *productSearchImpl) scrape(ctx context.Context, query string) ([]*product.Product, error) {
	observations, err := uc.provider.Search(ctx, query)
	if err != nil {
		slog.Warn("search provider failed, returning empty result", "query", query, "error", err)
		uc.observer.ProviderFallback(resourceProduct)
		return nil, nil
	}

	now := uc.clock.Now()
	queryKey := product.Key(query)
	var (
		out   []*product.Product
		index = make(map[uuid.UUID]int)
	)
	for _, o := range observations {
		p, err := product.FromObservation(o, now)
		if err != nil {
			slog.Debug("skipping unusable observation", "title", o.Title, "error", err)
			continue
		}
		// The query itself is kept so a repeat finds what this scrape stored.
		p.AddKeywords(queryKey)

		stored, err := uc.upsert(ctx, p, now)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "reconcile scraped product"), errs.ErrInternal)
		}
		if i, ok := index[stored.ID]; ok {
			out[i] = stored
			continue
		}
		index[stored.ID] = len(out)
		out = append(out, stored)
	}
	return out, nil
}

// upsert updates the cached product with the same name in place or inserts a
// new one. A lost insert race falls back to the update.
func (uc *productSearchImpl) upsert(ctx context.Context, fresh *product.Product, now time.Time) (*product.Product, error) {
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := uc.products.FindByName(ctx, fresh.Name)
		switch {
		case err == nil:
			return uc.products.Modify(ctx, existing.ID, func(p *product.Product) error {
				p.MergeScrape(fresh, now)
				return nil
			})
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, err
		}

		err = uc.products.Insert(ctx, fresh)
		if err == nil {
			return fresh, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
	}
	return nil, errs.Newf("product %q kept conflicting on insert", fresh.Name)
}

// present applies the platform filter, the sort and the best-value flag.
// Products without platforms have no price: they never win best value and
// sort last.
func present(products []*product.Product, params SearchParams) []*ProductResult {
	allow := make(map[string]struct{}, len(params.Platforms))
	for _, p := range params.Platforms {
		if name := strings.ToLower(strings.TrimSpace(p)); name != "" {
			allow[name] = struct{}{}
		}
	}

	results := make([]*ProductResult, 0, len(products))
	priced := make(map[*ProductResult]bool, len(products))
	for _, p := range products {
		if len(allow) > 0 && !p.SoldOnAny(allow) {
			continue
		}
		lowest, ok := p.LowestPrice()
		r := &ProductResult{Product: p, LowestPrice: lowest}
		priced[r] = ok
		results = append(results, r)
	}

	switch params.Sort {
	case SortPriceAsc, SortPriceDesc:
		desc := params.Sort == SortPriceDesc
		sort.SliceStable(results, func(i, j int) bool {
			a, b := results[i], results[j]
			if priced[a] != priced[b] {
				return priced[a]
			}
			if desc {
				return a.LowestPrice > b.LowestPrice
			}
			return a.LowestPrice < b.LowestPrice
		})
	}

	var (
		best     float64
		hasPrice bool
	)
	for _, r := range results {
		if priced[r] && (!hasPrice || r.LowestPrice < best) {
			best, hasPrice = r.LowestPrice, true
		}
	}
	for _, r := range results {
		r.BestValue = priced[r] && r.LowestPrice == best
	}
	return results
}
