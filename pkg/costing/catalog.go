// Package costing resolves repair costs for inspection rows. Codes are
// grouped into part families, each family's prices are summed and capped at
// the part's replacement price, and the families are folded into one total
// in which a must-replace family dominates.
package costing

import (
	"errors"
	"fmt"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// FamilyDef declares one family and the codes that belong to it.
type FamilyDef struct {
	Name  domain.Family `json:"name"  yaml:"name"`
	Codes []domain.Code `json:"codes" yaml:"codes"`
}

// Catalog maps each known code to exactly one family. It is immutable once
// built.
type Catalog struct {
	defs     []FamilyDef
	byCode   map[domain.Code]domain.Family
	byFamily map[domain.Family]int
}

// NewCatalog builds a catalog, rejecting empty names, duplicate families,
// and codes claimed by more than one family.
func NewCatalog(defs []FamilyDef) (*Catalog, error) {
	c := &Catalog{
		defs:     make([]FamilyDef, 0, len(defs)),
		byCode:   make(map[domain.Code]domain.Family),
		byFamily: make(map[domain.Family]int, len(defs)),
	}

	var errs []error
	for _, d := range defs {
		if d.Name == "" {
			errs = append(errs, errors.New("family name is required"))
			continue
		}
		if _, dup := c.byFamily[d.Name]; dup {
			errs = append(errs, fmt.Errorf("family %q declared twice", d.Name))
			continue
		}

		codes := make([]domain.Code, 0, len(d.Codes))
		for _, code := range d.Codes {
			if code.IsAbsent() {
				errs = append(errs, fmt.Errorf("family %q has an empty code", d.Name))
				continue
			}
			if owner, taken := c.byCode[code]; taken {
				errs = append(errs, fmt.Errorf(
					"code %q belongs to both %q and %q", code, owner, d.Name,
				))
				continue
			}
			c.byCode[code] = d.Name
			codes = append(codes, code)
		}

		c.byFamily[d.Name] = len(c.defs)
		c.defs = append(c.defs, FamilyDef{Name: d.Name, Codes: codes})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return c, nil
}

// FamilyOf returns the family a code belongs to. Matching is exact.
func (c *Catalog) FamilyOf(code domain.Code) (domain.Family, bool) {
	f, ok := c.byCode[code]
	return f, ok
}

// Families returns every family definition in declaration order.
func (c *Catalog) Families() []FamilyDef {
	out := make([]FamilyDef, len(c.defs))
	for i, d := range c.defs {
		out[i] = FamilyDef{Name: d.Name, Codes: append([]domain.Code(nil), d.Codes...)}
	}
	return out
}

// Len returns the number of known codes.
func (c *Catalog) Len() int {
	return len(c.byCode)
}

// DefaultCatalog returns the laptop inspection families.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultFamilies())
	if err != nil {
		// The literal below is a fixed partition; failure is a programming error.
		panic(err)
	}
	return c
}

func defaultFamilies() []FamilyDef {
	return []FamilyDef{
		{Name: "No Power", Codes: codeRange(1, 1)},
		{Name: "No Display", Codes: codeRange(2, 2)},
		{Name: "Hanging", Codes: codeRange(3, 3)},
		{Name: "Auto Restart", Codes: codeRange(4, 4)},
		{Name: "Power Button Not Working", Codes: codeRange(5, 5)},
		{Name: "BIOS Password", Codes: codeRange(6, 6)},
		{Name: "Power On Password", Codes: codeRange(7, 7)},
		{Name: "HDD Password", Codes: codeRange(8, 8)},
		{Name: "Body", Codes: codeRange(9, 20)},
		{Name: "Screen", Codes: codeRange(21, 31)},
		{Name: "Hinges", Codes: codeRange(32, 34)},
		{Name: "HDD", Codes: codeRange(35, 37)},
		{Name: "Memory Missing", Codes: codeRange(38, 38)},
		{Name: "Keys", Codes: codeRange(39, 41)},
		{Name: "Touchpad Not Working", Codes: codeRange(42, 42)},
		{Name: "Camera Not Working", Codes: codeRange(43, 43)},
		{Name: "Speaker", Codes: codeRange(44, 45)},
		{Name: "WIFI Not Working", Codes: codeRange(46, 46)},
		{Name: "Bluetooth Not Working", Codes: codeRange(47, 47)},
		{Name: "Mic Not Working", Codes: codeRange(48, 48)},
		{Name: "USB Not Working", Codes: codeRange(49, 49)},
		{Name: "Battery", Codes: codeRange(50, 52)},
		{Name: "Charger", Codes: codeRange(53, 56)},
		{Name: "Carry Bag Missing", Codes: codeRange(57, 57)},
		{Name: "Carry Bag Damaged", Codes: codeRange(58, 58)},
	}
}

// codeRange returns L<from> through L<to> inclusive.
func codeRange(from, to int) []domain.Code {
	codes := make([]domain.Code, 0, to-from+1)
	for n := from; n <= to; n++ {
		codes = append(codes, domain.Code(fmt.Sprintf("L%d", n)))
	}
	return codes
}
