package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func int64Ptr(v int64) *int64 { return &v }

func testEstimator(t *testing.T) *costing.Estimator {
	t.Helper()
	table, err := costing.NewPriceTable([]domain.PriceEntry{
		{Code: "L1", Description: "No power", SingleCost: domain.NeedsReplacement()},
		{Code: "L9", Description: "Body scratch", SingleCost: domain.Numeric(20)},
		{Code: "L21", Description: "Screen scratch", SingleCost: domain.Numeric(50), MaxCost: int64Ptr(60)},
		{Code: "L22", Description: "Screen crack", SingleCost: domain.Numeric(30), MaxCost: int64Ptr(60)},
		{Code: "L43", Description: "Camera", SingleCost: domain.NotAvailable()},
	})
	require.NoError(t, err)
	est, err := costing.NewEstimator(table, nil)
	require.NoError(t, err)
	return est
}

// estimatorProvider serves a fixed estimator.
type estimatorProvider struct {
	est *costing.Estimator
}

func (p *estimatorProvider) Estimator() *costing.Estimator {
	return p.est
}
