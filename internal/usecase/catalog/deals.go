package catalog

//go:generate mockgen -source=deals.go -destination=../../../tests/mock/catalog/deals.go -package=catalogmock

import (
	"context"
	"log/slog"

	"shopcompare/internal/domain/deal"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	resourceDeals = "deals"
	refreshKey    = "daily-deals"
)

type DailyDeals interface {
	GetDailyDeals(ctx context.Context) ([]*deal.Deal, error)
	// PruneDeals deletes deals past the retention window and reports how many.
	PruneDeals(ctx context.Context) (int64, error)
}

type dailyDealsImpl struct {
	deals    shared.DealStore
	source   shared.DealSource
	clock    clock.Clock
	observer shared.CacheObserver
	policy   Policy

	refreshes singleflight.Group
}

func NewDailyDeals(store shared.Store, source shared.DealSource, clk clock.Clock, observer shared.CacheObserver, policy Policy) DailyDeals {
	return &dailyDealsImpl{
		deals:    store.Deals(),
		source:   source,
		clock:    clk,
		observer: observer,
		policy:   policy,
	}
}

// GetDailyDeals prunes, then serves the recent deals if there are any and
// refreshes every platform otherwise.
func (uc *dailyDealsImpl) GetDailyDeals(ctx context.Context) ([]*deal.Deal, error) {
	if _, err := uc.PruneDeals(ctx); err != nil {
		return nil, err
	}

	recent, err := uc.recentDeals(ctx)
	if err != nil {
		return nil, err
	}
	if len(recent) > 0 {
		uc.observer.CacheLookup(resourceDeals, true)
		return recent, nil
	}
	uc.observer.CacheLookup(resourceDeals, false)

	v, err, _ := uc.refreshes.Do(refreshKey, func() (any, error) {
		return uc.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	refreshed, _ := v.([]*deal.Deal)
	out := make([]*deal.Deal, len(refreshed))
	copy(out, refreshed)
	return out, nil
}

func (uc *dailyDealsImpl) PruneDeals(ctx context.Context) (int64, error) {
	cutoff := uc.clock.Now().Add(-uc.policy.DealRetention)
	n, err := uc.deals.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "prune expired deals"), errs.ErrInternal)
	}
	if n > 0 {
		slog.Info("pruned expired deals", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func (uc *dailyDealsImpl) recentDeals(ctx context.Context) ([]*deal.Deal, error) {
	all, err := uc.deals.List(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list deals"), errs.ErrInternal)
	}
	now := uc.clock.Now()
	recent := make([]*deal.Deal, 0, len(all))
	for _, d := range all {
		if d.IsRecent(now, uc.policy.DealRecent) {
			recent = append(recent, d)
		}
	}
	deal.SortByScrapedAtDesc(recent)
	return recent, nil
}

// refresh fetches every platform concurrently and keeps platform order in the
// result. A waiter that lost the race may find the deals already written, so
// the recent set is checked again first.
func (uc *dailyDealsImpl) refresh(ctx context.Context) ([]*deal.Deal, error) {
	recent, err := uc.recentDeals(ctx)
	if err != nil {
		return nil, err
	}
	if len(recent) > 0 {
		return recent, nil
	}

	perPlatform := make([][]deal.Candidate, len(deal.Platforms))
	g, gctx := errgroup.WithContext(ctx)
	for i, platform := range deal.Platforms {
		g.Go(func() error {
			candidates, err := uc.source.FetchDeals(gctx, platform)
			if err != nil {
				return errs.Wrapf(err, "fetch %s deals", platform)
			}
			perPlatform[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("deal refresh failed", "error", err)
		if !errs.Is(err, errs.ErrUpstream) {
			err = errs.Upstream(err)
		}
		return nil, err
	}

	now := uc.clock.Now()
	fresh := make([]*deal.Deal, 0, len(deal.Platforms)*4)
	for i, platform := range deal.Platforms {
		for _, c := range perPlatform[i] {
			d, err := deal.New(c, platform, now)
			if err != nil {
				slog.Debug("skipping invalid deal candidate", "platform", platform, "name", c.Name, "error", err)
				continue
			}
			fresh = append(fresh, d)
		}
	}

	if err := uc.deals.InsertMany(ctx, fresh); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "store refreshed deals"), errs.ErrInternal)
	}
	uc.observer.DealsRefreshed(len(fresh))
	slog.Info("refreshed daily deals", "count", len(fresh))

	deal.SortByScrapedAtDesc(fresh)
	return fresh, nil
}
