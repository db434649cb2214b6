package costing

import (
	"errors"
	"fmt"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// PriceNotFoundError reports a grouped code that has no price table row.
type PriceNotFoundError struct {
	Code   domain.Code
	Family domain.Family
}

func (e *PriceNotFoundError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("no price for code %s", e.Code)
	}
	return fmt.Sprintf("no price for code %s (family %s)", e.Code, e.Family)
}

// Unwrap lets callers match with errors.Is(err, ErrPriceNotFound).
func (*PriceNotFoundError) Unwrap() error {
	return ErrPriceNotFound
}

// ResolveFamily computes the cost of one family's codes.
//
// Numeric single costs are summed. A sentinel single cost replaces the
// running value, and once the value is a sentinel later numeric costs are
// not added; if several sentinels occur the last one wins. The cap is read
// from the first code only and is applied to numeric values alone.
func ResolveFamily(t *PriceTable, g Group) (domain.FamilyCost, error) {
	fc := domain.FamilyCost{
		Family: g.Family,
		Codes:  append([]domain.Code(nil), g.Codes...),
	}
	if len(g.Codes) == 0 {
		fc.Cost = domain.Numeric(0)
		return fc, nil
	}

	running := domain.Numeric(0)
	for _, code := range g.Codes {
		single, err := t.SingleCost(code)
		if err != nil {
			return fc, wrapNotFound(err, code, g.Family)
		}
		running = accumulate(running, single)
	}

	maxCost, err := t.MaxCost(g.Codes[0])
	if err != nil {
		return fc, wrapNotFound(err, g.Codes[0], g.Family)
	}
	fc.MaxCost = maxCost

	if maxCost != nil && running.IsNumeric() && running.Amount > *maxCost {
		running = domain.Numeric(*maxCost)
		fc.Capped = true
	}

	fc.Cost = running
	return fc, nil
}

// accumulate folds one single cost into the running family value.
func accumulate(running, single domain.Cost) domain.Cost {
	if !single.IsNumeric() {
		return single
	}
	if !running.IsNumeric() {
		return running
	}
	return domain.Numeric(addAmounts(running.Amount, single.Amount))
}

func wrapNotFound(err error, code domain.Code, family domain.Family) error {
	if errors.Is(err, ErrPriceNotFound) {
		return &PriceNotFoundError{Code: code, Family: family}
	}
	return err
}
