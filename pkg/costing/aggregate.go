package costing

import (
	"math"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Aggregate folds family costs into a row total.
//
// Any must-replace family makes the whole row must-replace. Otherwise any
// not-available family makes the row not-available, since a numeric total
// would understate the cost. Otherwise the amounts are summed; no families
// sums to zero.
func Aggregate(costs []domain.Cost) domain.Cost {
	var (
		total        int64
		notAvailable bool
	)

	for _, c := range costs {
		switch {
		case c.Kind == domain.KindNeedsReplacement:
			return domain.NeedsReplacement()
		case c.Kind == domain.KindNotAvailable:
			notAvailable = true
		case !notAvailable:
			total = addAmounts(total, c.Amount)
		}
	}

	if notAvailable {
		return domain.NotAvailable()
	}
	return domain.Numeric(total)
}

// addAmounts adds two non-negative amounts, saturating at math.MaxInt64.
func addAmounts(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}
