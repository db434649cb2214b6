package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/repair-cost/internal/metrics"
	"github.com/donaldgifford/repair-cost/internal/pricing"
	"github.com/donaldgifford/repair-cost/internal/store"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

const defaultBatchSize = 200

// ErrRecostRunning is returned when a recost is requested while another
// one is still in progress.
var ErrRecostRunning = errors.New("recost already running")

// Engine costs inspection rows and persists the results.
type Engine struct {
	store     store.Store
	estimator atomic.Pointer[costing.Estimator]
	log       *slog.Logger
	batchSize int
	limiter   *rate.Limiter

	recostMu sync.Mutex
}

// NewEngine creates a new Engine with injected dependencies. The store may
// be nil when only ad-hoc estimates are needed.
func NewEngine(s store.Store, est *costing.Estimator, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:     s,
		log:       slog.Default(),
		batchSize: defaultBatchSize,
	}
	eng.estimator.Store(est)
	for _, opt := range opts {
		opt(eng)
	}
	metrics.PriceTableEntries.Set(float64(est.Prices().Len()))
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithBatchSize sets how many inspections are read per page during recost.
func WithBatchSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithRowRate limits how many rows per second a recost writes back, so a
// large backfill does not starve interactive traffic. Zero or less means
// unlimited.
func WithRowRate(perSecond float64) EngineOption {
	return func(e *Engine) {
		if perSecond > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// Estimator returns the estimator currently in use.
func (eng *Engine) Estimator() *costing.Estimator {
	return eng.estimator.Load()
}

// ReloadPrices loads a fresh price table from src and swaps it in, keeping
// the current catalog. Estimates already in flight finish on the old table.
func (eng *Engine) ReloadPrices(ctx context.Context, src pricing.Source) (int, error) {
	table, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading prices: %w", err)
	}
	est, err := costing.NewEstimator(table, eng.Estimator().Catalog())
	if err != nil {
		return 0, err
	}
	eng.estimator.Store(est)
	metrics.PriceTableEntries.Set(float64(table.Len()))
	eng.log.Info("price table reloaded", "entries", table.Len())
	return table.Len(), nil
}

// Estimate costs one row of codes and records estimation metrics.
func (eng *Engine) Estimate(codes []domain.Code) (*domain.Estimate, error) {
	est, err := eng.Estimator().Estimate(codes)
	if err != nil {
		metrics.EstimateFailuresTotal.Inc()
		return nil, err
	}

	for _, c := range est.Dropped {
		eng.log.Debug("dropping code with no family", "code", c)
	}
	metrics.UnknownCodesTotal.Add(float64(len(est.Dropped)))
	metrics.FamiliesCappedTotal.Add(float64(len(est.CappedFamilies())))
	metrics.EstimatesTotal.WithLabelValues(resultLabel(est.Total)).Inc()
	return est, nil
}

// CostInspection estimates one inspection and persists the total. When the
// row cannot be costed the failure is recorded on the inspection and the
// estimation error is returned.
func (eng *Engine) CostInspection(ctx context.Context, in *domain.Inspection) (*domain.Estimate, error) {
	est, err := eng.Estimate(in.Codes)
	if err != nil {
		if recErr := eng.store.RecordInspectionFailure(ctx, in.ID, err.Error()); recErr != nil {
			return nil, errors.Join(err, fmt.Errorf("recording failure: %w", recErr))
		}
		in.CostError = err.Error()
		return nil, err
	}

	if err := eng.store.UpdateInspectionCost(ctx, in.ID, est.Total); err != nil {
		return nil, fmt.Errorf("saving cost for inspection %s: %w", in.ID, err)
	}

	total := est.Total.String()
	in.TotalCost = &total
	in.CostKind = est.Total.Kind
	in.CostError = ""
	return est, nil
}

func resultLabel(c domain.Cost) string {
	switch c.Kind {
	case domain.KindNeedsReplacement:
		return metrics.ResultNeedsReplacement
	case domain.KindNotAvailable:
		return metrics.ResultNotAvailable
	default:
		return metrics.ResultNumeric
	}
}
