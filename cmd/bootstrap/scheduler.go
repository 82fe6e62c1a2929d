package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shopcompare/internal/pkg/config"
	"shopcompare/internal/usecase/catalog"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(func(*cron.Cron) {}),
)

const pruneTimeout = time.Minute

// NewScheduler registers the deal prune job. GetDailyDeals also prunes on
// read; the job covers idle periods.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, deals catalog.DailyDeals) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Deals.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DEALS_TIMEZONE: %w", err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(
			cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor,
		)),
	)

	_, err = c.AddFunc(cfg.Deals.PruneSchedule, func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("deal prune job panicked", "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
		defer cancel()

		removed, err := deals.PruneDeals(ctx)
		if err != nil {
			slog.Error("deal prune job failed", "error", err)
			return
		}
		slog.Info("deal prune job finished", "removed", removed)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid DEALS_PRUNE_SCHEDULE %q: %w", cfg.Deals.PruneSchedule, err)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("scheduler started", "prune_schedule", cfg.Deals.PruneSchedule, "timezone", loc.String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return c, nil
}
