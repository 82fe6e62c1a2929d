package components

import (
	"context"
	"log/slog"
	"net/http"

	"shopcompare/internal/infra/dealfeed"
	"shopcompare/internal/infra/metrics"
	"shopcompare/internal/infra/ratelimit"
	"shopcompare/internal/infra/scraper"
	"shopcompare/internal/infra/serpapi"
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/usecase/catalog"
	"shopcompare/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const serpBudgetName = "serpapi"

var ProviderModule = fx.Module("provider",
	fx.Provide(
		metrics.NewRegistry,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(shared.CacheObserver)),
		),
		NewProviderBudget,
		fx.Annotate(
			NewSerpClient,
			fx.As(fx.Self()),
			fx.As(new(shared.SearchProvider)),
		),
		NewDealSource,
		NewOrderStatusScraper,
		NewCachePolicy,
	),
)

// NewProviderBudget shares the provider call budget through Redis when it is
// configured, so every replica draws from the same allowance.
func NewProviderBudget(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (serpapi.Budget, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, provider calls are not budgeted")
		return ratelimit.Unlimited{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return ratelimit.NewRedisBudget(rdb, serpBudgetName, cfg.SerpAPI.Budget, cfg.SerpAPI.BudgetWindow, clk), nil
}

func NewSerpClient(cfg config.Config, budget serpapi.Budget, m *metrics.Metrics) *serpapi.Client {
	return serpapi.NewClient(cfg.SerpAPI, budget, m.InstrumentProvider(http.DefaultTransport))
}

func NewDealSource(cfg config.Config, client *serpapi.Client, clk clock.Clock) shared.DealSource {
	if cfg.Deals.Source == config.DealsSourceProvider {
		return serpapi.NewDealSource(client)
	}
	return dealfeed.NewCatalogSource(clk)
}

func NewOrderStatusScraper(cfg config.Config) shared.OrderStatusScraper {
	return scraper.NewOrderStatusScraper(cfg.Scraper)
}

func NewCachePolicy(cfg config.Config) catalog.Policy {
	return catalog.NewPolicy(cfg.Cache)
}
