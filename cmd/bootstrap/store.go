package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"shopcompare/internal/handler"
	"shopcompare/internal/infra/db"
	"shopcompare/internal/infra/memstore"
	"shopcompare/internal/infra/mongostore"
	"shopcompare/internal/infra/pgstore"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		func(s shared.Store) handler.Pinger { return s },
	),
)

// NewStore opens the document store selected by STORE_DRIVER and prepares
// its schema or indexes.
func NewStore(lc fx.Lifecycle, cfg config.Config) (shared.Store, error) {
	ctx := context.Background()

	var store shared.Store
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		slog.Warn("using in-memory store; data is lost on restart")
		store = memstore.New()
	case config.StoreDriverPostgres:
		pool, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		pg := pgstore.New(pool)
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		store = pg
	case config.StoreDriverMongo:
		mg, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mg.EnsureIndexes(ctx); err != nil {
			_ = mg.Close(ctx)
			return nil, err
		}
		store = mg
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	slog.Info("store ready", "driver", cfg.Store.Driver)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close(ctx)
		},
	})
	return store, nil
}
