// Package domain defines the core business types for repair cost estimation.
package domain

import (
	"slices"
	"strconv"
	"time"
)

// Code identifies a single defect or part condition observed on a device
// (for example "L21"). The zero value means the input slot was empty.
type Code string

// IsAbsent reports whether the code slot was left empty.
func (c Code) IsAbsent() bool {
	return c == ""
}

// Family names a group of codes that refer to the same physical part and
// share one price cap (for example "Screen").
type Family string

// CostKind tags the state of a Cost.
type CostKind string

// Cost kind constants.
const (
	KindNumeric          CostKind = "numeric"
	KindNeedsReplacement CostKind = "needs_replacement"
	KindNotAvailable     CostKind = "not_available"
)

// Display strings for the two sentinel kinds.
const (
	NeedsReplacementText = "NEED TO BE REPLACED"
	NotAvailableText     = "NOT AVAILABLE"
)

// Cost is a repair price: either a non-negative amount or one of the
// sentinel kinds. Amount is only meaningful for KindNumeric.
type Cost struct {
	Kind   CostKind `json:"kind"`
	Amount int64    `json:"amount"`
}

// Numeric returns a numeric cost.
func Numeric(amount int64) Cost {
	return Cost{Kind: KindNumeric, Amount: amount}
}

// NeedsReplacement returns the must-replace sentinel.
func NeedsReplacement() Cost {
	return Cost{Kind: KindNeedsReplacement}
}

// NotAvailable returns the price-unknown sentinel.
func NotAvailable() Cost {
	return Cost{Kind: KindNotAvailable}
}

// IsNumeric reports whether c carries an amount.
func (c Cost) IsNumeric() bool {
	return c.Kind == KindNumeric || c.Kind == ""
}

// String renders the cost the way it is written back to result sinks.
func (c Cost) String() string {
	switch c.Kind {
	case KindNeedsReplacement:
		return NeedsReplacementText
	case KindNotAvailable:
		return NotAvailableText
	default:
		return strconv.FormatInt(c.Amount, 10)
	}
}

// PriceEntry is one row of the price table.
type PriceEntry struct {
	Code        Code   `json:"code"                  db:"code"`
	Description string `json:"description,omitempty" db:"description"`
	SingleCost  Cost   `json:"single_cost"           db:"single_cost"`
	MaxCost     *int64 `json:"max_cost,omitempty"    db:"max_cost"`
}

// FamilyCost is the resolved cost of one family on one input row.
type FamilyCost struct {
	Family  Family `json:"family"`
	Codes   []Code `json:"codes"`
	Cost    Cost   `json:"cost"`
	MaxCost *int64 `json:"max_cost,omitempty"`
	Capped  bool   `json:"capped"`
}

// Estimate is the result of costing one input row.
type Estimate struct {
	Total    Cost         `json:"total"`
	Families []FamilyCost `json:"families"`
	Dropped  []Code       `json:"dropped,omitempty"`
}

// NeedsReplacement reports whether the whole device must be replaced.
func (e *Estimate) NeedsReplacement() bool {
	return e.Total.Kind == KindNeedsReplacement
}

// CappedFamilies returns the families whose summed cost was clamped.
func (e *Estimate) CappedFamilies() []Family {
	var out []Family
	for i := range e.Families {
		if e.Families[i].Capped {
			out = append(out, e.Families[i].Family)
		}
	}
	return out
}

// InspectionSlots is the number of code columns on an inspection record.
const InspectionSlots = 4

// Inspection is a single device inspection record awaiting or holding a
// computed total cost.
type Inspection struct {
	ID        string     `json:"id"                   db:"id"`
	Reference string     `json:"reference,omitempty"  db:"reference"`
	Codes     []Code     `json:"codes"                db:"codes"`
	TotalCost *string    `json:"total_cost,omitempty" db:"total_cost"`
	CostKind  CostKind   `json:"cost_kind,omitempty"  db:"cost_kind"`
	CostError string     `json:"cost_error,omitempty" db:"cost_error"`
	CostedAt  *time.Time `json:"costed_at,omitempty"  db:"costed_at"`
	CreatedAt time.Time  `json:"created_at"           db:"created_at"`
}

// Empty reports whether every code slot on the inspection is absent.
func (i *Inspection) Empty() bool {
	return !slices.ContainsFunc(i.Codes, func(c Code) bool { return !c.IsAbsent() })
}
