package costing

import (
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func cap64(v int64) *int64 {
	return &v
}

func priced(code string, single int64, maxCost *int64) domain.PriceEntry {
	return domain.PriceEntry{Code: domain.Code(code), SingleCost: domain.Numeric(single), MaxCost: maxCost}
}

func sentinel(code string, c domain.Cost, maxCost *int64) domain.PriceEntry {
	return domain.PriceEntry{Code: domain.Code(code), SingleCost: c, MaxCost: maxCost}
}

func mustTable(t *testing.T, entries ...domain.PriceEntry) *PriceTable {
	t.Helper()
	tbl, err := NewPriceTable(entries)
	require.NoError(t, err)
	return tbl
}

func codes(cs ...string) []domain.Code {
	out := make([]domain.Code, len(cs))
	for i, c := range cs {
		out[i] = domain.Code(c)
	}
	return out
}
