package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/repair-cost/internal/config"
	"github.com/donaldgifford/repair-cost/internal/engine"
	"github.com/donaldgifford/repair-cost/internal/pricing"
	"github.com/donaldgifford/repair-cost/internal/store"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	"github.com/donaldgifford/repair-cost/pkg/logger"
)

// app holds the components shared by the server-side commands.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	store  *store.PostgresStore // nil unless a component needs PostgreSQL
	source pricing.Source
	engine *engine.Engine
}

// newApp loads config, connects to PostgreSQL when needed (or when
// forceDB is set), loads the price table and builds the engine.
func newApp(ctx context.Context, forceDB bool) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{
		cfg: cfg,
		log: logger.New(cfg.Logging.Level, cfg.Logging.Format),
	}

	// Keep the interface nil when there is no store.
	var st store.Store
	if forceDB || cfg.NeedsDatabase() {
		a.store, err = store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		st = a.store
	}

	a.source, err = pricing.NewSource(&cfg.Pricing, st)
	if err != nil {
		a.close()
		return nil, err
	}

	table, err := a.source.Load(ctx)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("loading prices: %w", err)
	}

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	est, err := costing.NewEstimator(table, catalog)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("building estimator: %w", err)
	}

	a.engine = engine.NewEngine(st, est,
		engine.WithLogger(a.log),
		engine.WithBatchSize(cfg.Recost.BatchSize),
		engine.WithRowRate(cfg.Recost.RowsPerSecond),
	)

	a.log.Info("price table loaded",
		"source", cfg.Pricing.Source,
		"entries", table.Len(),
		"families", catalog.Len(),
	)
	return a, nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
}
