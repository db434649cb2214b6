// Package engine implements repair costing over stored inspections:
// single-row costing, batch recosting, and the recost schedule.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/repair-cost/internal/metrics"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Recost outcome label values.
const (
	outcomeCosted  = "costed"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// RowFailure describes one inspection that could not be costed.
type RowFailure struct {
	InspectionID string      `json:"inspection_id"`
	Reference    string      `json:"reference,omitempty"`
	Code         domain.Code `json:"code,omitempty"`
	Error        string      `json:"error"`
}

// RecostSummary reports the outcome of a batch recost.
type RecostSummary struct {
	Costed       int          `json:"costed"`
	Replaced     int          `json:"replaced"`
	NotAvailable int          `json:"not_available"`
	Skipped      int          `json:"skipped"`
	Failed       int          `json:"failed"`
	Failures     []RowFailure `json:"failures,omitempty"`
}

// RecostAll recomputes the cost of every stored inspection.
func (eng *Engine) RecostAll(ctx context.Context) (*RecostSummary, error) {
	return eng.recost(ctx, false)
}

// RecostPending costs inspections that have no stored total yet, including
// ones that failed on an earlier run.
func (eng *Engine) RecostPending(ctx context.Context) (*RecostSummary, error) {
	return eng.recost(ctx, true)
}

// recost walks inspections in ID order one page at a time. A row that fails
// is recorded and the walk continues with the next row; only store read
// errors and cancellation stop the run.
func (eng *Engine) recost(ctx context.Context, pendingOnly bool) (*RecostSummary, error) {
	if !eng.recostMu.TryLock() {
		return nil, ErrRecostRunning
	}
	defer eng.recostMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.RecostDuration.Observe(time.Since(start).Seconds())
	}()

	summary := &RecostSummary{}
	after := ""
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		page, err := eng.store.ListInspectionsCursor(ctx, after, eng.batchSize, pendingOnly)
		if err != nil {
			return summary, fmt.Errorf("listing inspections: %w", err)
		}

		for i := range page {
			if eng.limiter != nil {
				if err := eng.limiter.Wait(ctx); err != nil {
					return summary, fmt.Errorf("row rate limiter wait: %w", err)
				}
			}
			eng.recostRow(ctx, &page[i], summary)
		}

		if len(page) < eng.batchSize {
			break
		}
		after = page[len(page)-1].ID
	}

	eng.log.Info("recost complete",
		"pending_only", pendingOnly,
		"costed", summary.Costed,
		"replaced", summary.Replaced,
		"not_available", summary.NotAvailable,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration", time.Since(start),
	)
	return summary, nil
}

func (eng *Engine) recostRow(ctx context.Context, in *domain.Inspection, summary *RecostSummary) {
	if in.Empty() {
		summary.Skipped++
		metrics.RecostRowsTotal.WithLabelValues(outcomeSkipped).Inc()
		return
	}

	est, err := eng.CostInspection(ctx, in)
	if err != nil {
		failure := RowFailure{
			InspectionID: in.ID,
			Reference:    in.Reference,
			Error:        err.Error(),
		}
		var notFound *costing.PriceNotFoundError
		if errors.As(err, &notFound) {
			failure.Code = notFound.Code
		}
		summary.Failed++
		summary.Failures = append(summary.Failures, failure)
		metrics.RecostRowsTotal.WithLabelValues(outcomeFailed).Inc()
		eng.log.Warn("inspection not costed",
			"inspection_id", in.ID,
			"reference", in.Reference,
			"error", err,
		)
		return
	}

	summary.Costed++
	switch est.Total.Kind {
	case domain.KindNeedsReplacement:
		summary.Replaced++
	case domain.KindNotAvailable:
		summary.NotAvailable++
	}
	metrics.RecostRowsTotal.WithLabelValues(outcomeCosted).Inc()
}
