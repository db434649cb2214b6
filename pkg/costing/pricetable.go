package costing

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// ErrPriceNotFound is returned when a code has no row in the price table.
var ErrPriceNotFound = errors.New("price not found")

// PriceTable is a read-only price list keyed by code. Lookups ignore case.
type PriceTable struct {
	entries []domain.PriceEntry
	index   map[string]int
}

// NewPriceTable builds a table from entries. Codes must be non-empty and
// unique ignoring case; numeric costs and caps must not be negative.
func NewPriceTable(entries []domain.PriceEntry) (*PriceTable, error) {
	t := &PriceTable{
		entries: make([]domain.PriceEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	var errs []error
	for i := range entries {
		e := entries[i]
		key := normalize(e.Code)
		switch {
		case key == "":
			errs = append(errs, fmt.Errorf("entry %d: code is required", i))
			continue
		case e.SingleCost.IsNumeric() && e.SingleCost.Amount < 0:
			errs = append(errs, fmt.Errorf("entry %q: negative single cost", e.Code))
			continue
		case e.MaxCost != nil && *e.MaxCost < 0:
			errs = append(errs, fmt.Errorf("entry %q: negative max cost", e.Code))
			continue
		}
		if _, dup := t.index[key]; dup {
			errs = append(errs, fmt.Errorf("entry %q: duplicate code", e.Code))
			continue
		}
		if e.SingleCost.Kind == "" {
			e.SingleCost.Kind = domain.KindNumeric
		}
		t.index[key] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building price table: %w", err)
	}
	return t, nil
}

// Lookup returns the entry for code.
func (t *PriceTable) Lookup(code domain.Code) (domain.PriceEntry, bool) {
	i, ok := t.index[normalize(code)]
	if !ok {
		return domain.PriceEntry{}, false
	}
	return t.entries[i], true
}

// SingleCost returns the per-code repair price.
func (t *PriceTable) SingleCost(code domain.Code) (domain.Cost, error) {
	e, ok := t.Lookup(code)
	if !ok {
		return domain.Cost{}, fmt.Errorf("%w: %s", ErrPriceNotFound, code)
	}
	return e.SingleCost, nil
}

// MaxCost returns the family cap recorded against code, or nil if none.
func (t *PriceTable) MaxCost(code domain.Code) (*int64, error) {
	e, ok := t.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPriceNotFound, code)
	}
	if e.MaxCost == nil {
		return nil, nil
	}
	v := *e.MaxCost
	return &v, nil
}

// Entries returns a copy of the entries in load order.
func (t *PriceTable) Entries() []domain.PriceEntry {
	return append([]domain.PriceEntry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *PriceTable) Len() int {
	return len(t.entries)
}

func normalize(code domain.Code) string {
	return strings.ToLower(strings.TrimSpace(string(code)))
}
