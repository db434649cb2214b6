// Package pricing loads the repair price table from a YAML price file or
// from the database.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/repair-cost/internal/config"
	"github.com/donaldgifford/repair-cost/internal/store"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

// Sentinels holds the price cell tokens for the two non-numeric states.
// Tokens are matched without regard to case.
type Sentinels struct {
	NeedsReplacement string
	NotAvailable     string
}

// DefaultSentinels returns the NTR / NA tokens.
func DefaultSentinels() Sentinels {
	return Sentinels{NeedsReplacement: "NTR", NotAvailable: "NA"}
}

// SentinelsFromConfig converts the configured tokens.
func SentinelsFromConfig(c config.SentinelsConfig) Sentinels {
	return Sentinels{NeedsReplacement: c.NeedsReplacement, NotAvailable: c.NotAvailable}
}

// priceFile is the on-disk layout of a price list.
type priceFile struct {
	Prices []priceRow `yaml:"prices"`
}

type priceRow struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	SingleCost  string `yaml:"single_cost"`
	MaxCost     string `yaml:"max_cost"`
	MaxCostFrom string `yaml:"max_cost_from"`
}

// LoadFile reads a YAML price list and builds a price table from it.
func LoadFile(path string, s Sentinels) (*costing.PriceTable, error) {
	entries, err := ReadFile(path, s)
	if err != nil {
		return nil, err
	}
	return costing.NewPriceTable(entries)
}

// ReadFile reads a YAML price list into entries without building a table.
func ReadFile(path string, s Sentinels) ([]domain.PriceEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // price file path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading price file: %w", err)
	}
	entries, err := Parse(data, s)
	if err != nil {
		return nil, fmt.Errorf("parsing price file %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes a YAML price list. Cells that fail to parse are collected
// and reported together.
func Parse(data []byte, s Sentinels) ([]domain.PriceEntry, error) {
	var f priceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	entries := make([]domain.PriceEntry, 0, len(f.Prices))
	var errs []error
	for i, row := range f.Prices {
		e, err := parseRow(row, s)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i+1, row.Code, err))
			continue
		}
		entries = append(entries, e)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := resolveMaxCostFrom(f.Prices, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseRow(row priceRow, s Sentinels) (domain.PriceEntry, error) {
	e := domain.PriceEntry{
		Code:        domain.Code(strings.TrimSpace(row.Code)),
		Description: row.Description,
	}
	if e.Code.IsAbsent() {
		return e, errors.New("code is required")
	}

	single, err := ParseCost(row.SingleCost, s)
	if err != nil {
		return e, fmt.Errorf("single_cost: %w", err)
	}
	e.SingleCost = single

	if strings.TrimSpace(row.MaxCost) != "" {
		if row.MaxCostFrom != "" {
			return e, errors.New("max_cost and max_cost_from are mutually exclusive")
		}
		v, err := parseAmount(row.MaxCost)
		if err != nil {
			return e, fmt.Errorf("max_cost: %w", err)
		}
		e.MaxCost = &v
	}
	return e, nil
}

// ParseCost converts a price cell into a Cost. Numbers may carry a
// fractional part, which is truncated.
func ParseCost(cell string, s Sentinels) (domain.Cost, error) {
	cell = strings.TrimSpace(cell)
	switch {
	case cell == "":
		return domain.Cost{}, errors.New("value is required")
	case s.NeedsReplacement != "" && strings.EqualFold(cell, s.NeedsReplacement):
		return domain.NeedsReplacement(), nil
	case s.NotAvailable != "" && strings.EqualFold(cell, s.NotAvailable):
		return domain.NotAvailable(), nil
	}

	v, err := parseAmount(cell)
	if err != nil {
		return domain.Cost{}, err
	}
	return domain.Numeric(v), nil
}

func parseAmount(cell string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", cell)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %q", cell)
	}
	whole := d.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q out of range", cell)
	}
	return whole.IntPart(), nil
}

// resolveMaxCostFrom copies caps from referenced rows, following chains.
// Rows and entries are index-aligned.
func resolveMaxCostFrom(rows []priceRow, entries []domain.PriceEntry) error {
	byCode := make(map[string]int, len(rows))
	for i, row := range rows {
		byCode[strings.ToLower(strings.TrimSpace(row.Code))] = i
	}

	var errs []error
	for i, row := range rows {
		if row.MaxCostFrom == "" {
			continue
		}
		seen := map[int]bool{i: true}
		j := i
		for {
			ref := strings.ToLower(strings.TrimSpace(rows[j].MaxCostFrom))
			next, ok := byCode[ref]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: max_cost_from references unknown code %q",
					row.Code, rows[j].MaxCostFrom))
				break
			}
			if seen[next] {
				errs = append(errs, fmt.Errorf("%s: max_cost_from cycle", row.Code))
				break
			}
			seen[next] = true
			if rows[next].MaxCostFrom == "" {
				if m := entries[next].MaxCost; m != nil {
					v := *m
					entries[i].MaxCost = &v
				}
				break
			}
			j = next
		}
	}
	return errors.Join(errs...)
}

// Source loads a price table.
type Source interface {
	Load(ctx context.Context) (*costing.PriceTable, error)
}

// FileSource loads prices from a YAML price file.
type FileSource struct {
	Path      string
	Sentinels Sentinels
}

// Load implements Source.
func (f *FileSource) Load(_ context.Context) (*costing.PriceTable, error) {
	return LoadFile(f.Path, f.Sentinels)
}

// StoreSource loads prices from the price_entries table.
type StoreSource struct {
	Store store.Store
}

// Load implements Source.
func (s *StoreSource) Load(ctx context.Context) (*costing.PriceTable, error) {
	entries, err := s.Store.ListPriceEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading prices from store: %w", err)
	}
	return costing.NewPriceTable(entries)
}

// NewSource returns the Source selected by cfg. st may be nil for the
// file source.
func NewSource(cfg *config.PricingConfig, st store.Store) (Source, error) {
	switch cfg.Source {
	case config.SourceFile:
		return &FileSource{Path: cfg.File, Sentinels: SentinelsFromConfig(cfg.Sentinels)}, nil
	case config.SourceDatabase:
		if st == nil {
			return nil, errors.New("database price source requires a store")
		}
		return &StoreSource{Store: st}, nil
	default:
		return nil, fmt.Errorf("unknown price source %q", cfg.Source)
	}
}

// Import writes entries into the store, replacing rows with the same code.
// It returns the number of rows written.
func Import(ctx context.Context, st store.Store, entries []domain.PriceEntry) (int, error) {
	if _, err := costing.NewPriceTable(entries); err != nil {
		return 0, err
	}
	for i := range entries {
		if err := st.UpsertPriceEntry(ctx, &entries[i]); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
