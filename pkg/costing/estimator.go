package costing

import (
	"errors"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Estimator costs inspection rows against a fixed price table and catalog.
// It holds no per-row state and is safe for concurrent use.
type Estimator struct {
	table   *PriceTable
	catalog *Catalog
}

// NewEstimator creates an Estimator. A nil catalog selects DefaultCatalog.
func NewEstimator(table *PriceTable, catalog *Catalog) (*Estimator, error) {
	if table == nil {
		return nil, errors.New("price table is required")
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Estimator{table: table, catalog: catalog}, nil
}

// Catalog returns the family catalog in use.
func (e *Estimator) Catalog() *Catalog {
	return e.catalog
}

// Prices returns the price table in use.
func (e *Estimator) Prices() *PriceTable {
	return e.table
}

// Estimate groups codes by family, resolves each family, and aggregates the
// row total. A grouped code missing from the price table aborts the row
// with a *PriceNotFoundError.
func (e *Estimator) Estimate(codes []domain.Code) (*domain.Estimate, error) {
	groups, dropped := GroupCodes(e.catalog, codes)

	est := &domain.Estimate{
		Families: make([]domain.FamilyCost, 0, len(groups)),
		Dropped:  dropped,
	}
	costs := make([]domain.Cost, 0, len(groups))

	for _, g := range groups {
		fc, err := ResolveFamily(e.table, g)
		if err != nil {
			return nil, err
		}
		est.Families = append(est.Families, fc)
		costs = append(costs, fc.Cost)
	}

	est.Total = Aggregate(costs)
	return est, nil
}
