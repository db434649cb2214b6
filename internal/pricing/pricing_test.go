package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/repair-cost/internal/config"
	storeMocks "github.com/donaldgifford/repair-cost/internal/store/mocks"
	"github.com/donaldgifford/repair-cost/pkg/costing"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func TestParseCost(t *testing.T) {
	t.Parallel()

	s := DefaultSentinels()
	tests := []struct {
		name    string
		cell    string
		want    domain.Cost
		wantErr bool
	}{
		{name: "integer", cell: "120", want: domain.Numeric(120)},
		{name: "fraction truncated", cell: "49.99", want: domain.Numeric(49)},
		{name: "surrounding space", cell: "  7 ", want: domain.Numeric(7)},
		{name: "zero", cell: "0", want: domain.Numeric(0)},
		{name: "needs replacement token", cell: "NTR", want: domain.NeedsReplacement()},
		{name: "token ignores case", cell: "ntr", want: domain.NeedsReplacement()},
		{name: "not available token", cell: "NA", want: domain.NotAvailable()},
		{name: "empty", cell: "", wantErr: true},
		{name: "garbage", cell: "cheap", wantErr: true},
		{name: "negative", cell: "-1", wantErr: true},
		{name: "largest amount", cell: "9223372036854775807", want: domain.Numeric(9223372036854775807)},
		{name: "one past int64 range", cell: "9223372036854775808", wantErr: true},
		{name: "wraps past uint64", cell: "18446744073709551617", wantErr: true},
		{name: "exponent out of range", cell: "1e30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCost(tt.cell, s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCost_CustomTokens(t *testing.T) {
	t.Parallel()

	s := Sentinels{NeedsReplacement: "REPLACE", NotAvailable: "UNKNOWN"}

	got, err := ParseCost("replace", s)
	require.NoError(t, err)
	assert.Equal(t, domain.NeedsReplacement(), got)

	_, err = ParseCost("NTR", s)
	require.Error(t, err)
}

func TestParse_MaxCostFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantCap map[domain.Code]*int64
		wantErr string
	}{
		{
			name: "inherits cap",
			yaml: `
prices:
  - {code: L21, single_cost: 50, max_cost: 60}
  - {code: L22, single_cost: 30, max_cost_from: L21}
`,
			wantCap: map[domain.Code]*int64{"L21": ptr(60), "L22": ptr(60)},
		},
		{
			name: "follows chain ignoring case",
			yaml: `
prices:
  - {code: L21, single_cost: 50, max_cost: 60}
  - {code: L22, single_cost: 30, max_cost_from: l21}
  - {code: L23, single_cost: 10, max_cost_from: L22}
`,
			wantCap: map[domain.Code]*int64{"L23": ptr(60)},
		},
		{
			name: "reference without cap stays uncapped",
			yaml: `
prices:
  - {code: L21, single_cost: 50}
  - {code: L22, single_cost: 30, max_cost_from: L21}
`,
			wantCap: map[domain.Code]*int64{"L22": nil},
		},
		{
			name: "unknown reference",
			yaml: `
prices:
  - {code: L22, single_cost: 30, max_cost_from: L99}
`,
			wantErr: "unknown code",
		},
		{
			name: "cycle",
			yaml: `
prices:
  - {code: L21, single_cost: 1, max_cost_from: L22}
  - {code: L22, single_cost: 2, max_cost_from: L21}
`,
			wantErr: "cycle",
		},
		{
			name: "both cap fields",
			yaml: `
prices:
  - {code: L21, single_cost: 1, max_cost: 5, max_cost_from: L22}
  - {code: L22, single_cost: 2, max_cost: 5}
`,
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries, err := Parse([]byte(tt.yaml), DefaultSentinels())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			byCode := make(map[domain.Code]domain.PriceEntry, len(entries))
			for _, e := range entries {
				byCode[e.Code] = e
			}
			for code, want := range tt.wantCap {
				assert.Equal(t, want, byCode[code].MaxCost, "code %s", code)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	table, err := LoadFile("testdata/prices.yaml", DefaultSentinels())
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	cost, err := table.SingleCost("l22")
	require.NoError(t, err)
	assert.Equal(t, domain.Numeric(30), cost)

	capped, err := table.MaxCost("L22")
	require.NoError(t, err)
	require.NotNil(t, capped)
	assert.Equal(t, int64(60), *capped)

	cost, err = table.SingleCost("L43")
	require.NoError(t, err)
	assert.Equal(t, domain.NotAvailable(), cost)
}

func TestLoadFile_ExampleCoversDefaultCatalog(t *testing.T) {
	t.Parallel()

	table, err := LoadFile("../../configs/prices.example.yaml", DefaultSentinels())
	require.NoError(t, err)

	for _, fam := range costing.DefaultCatalog().Families() {
		for _, code := range fam.Codes {
			_, ok := table.Lookup(code)
			assert.True(t, ok, "%s (%s) has no price", code, fam.Name)
		}
	}

	body, ok := table.Lookup("L9")
	require.True(t, ok)
	assert.Equal(t, "Body: Top cover scratch", body.Description)

	capped, err := table.MaxCost("L25")
	require.NoError(t, err)
	require.NotNil(t, capped)
	assert.Equal(t, int64(120), *capped)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/missing.yaml", DefaultSentinels())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading price file")

	_, err = LoadFile("testdata/bad.yaml", DefaultSentinels())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid amount "cheap"`)
	assert.Contains(t, err.Error(), `negative amount "-5"`)
}

func TestStoreSource_Load(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListPriceEntries(mock.Anything).Return([]domain.PriceEntry{
		{Code: "L21", SingleCost: domain.Numeric(50), MaxCost: ptr(60)},
	}, nil).Once()

	table, err := (&StoreSource{Store: ms}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestStoreSource_LoadError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListPriceEntries(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := (&StoreSource{Store: ms}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	src, err := NewSource(&config.PricingConfig{
		Source:    config.SourceFile,
		File:      "testdata/prices.yaml",
		Sentinels: config.SentinelsConfig{NeedsReplacement: "NTR", NotAvailable: "NA"},
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = NewSource(&config.PricingConfig{Source: config.SourceDatabase}, nil)
	require.Error(t, err)

	src, err = NewSource(&config.PricingConfig{Source: config.SourceDatabase}, storeMocks.NewMockStore(t))
	require.NoError(t, err)
	assert.IsType(t, &StoreSource{}, src)

	_, err = NewSource(&config.PricingConfig{Source: "ftp"}, nil)
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	t.Parallel()

	entries := []domain.PriceEntry{
		{Code: "L1", SingleCost: domain.NeedsReplacement()},
		{Code: "L21", SingleCost: domain.Numeric(50), MaxCost: ptr(60)},
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().UpsertPriceEntry(mock.Anything, mock.AnythingOfType("*domain.PriceEntry")).
		Return(nil).Times(2)

	n, err := Import(context.Background(), ms, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImport_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	_, err := Import(context.Background(), ms, []domain.PriceEntry{
		{Code: "L1", SingleCost: domain.Numeric(1)},
		{Code: "l1", SingleCost: domain.Numeric(2)},
	})
	require.Error(t, err)
}

func TestImport_StopsOnStoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().UpsertPriceEntry(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	n, err := Import(context.Background(), ms, []domain.PriceEntry{
		{Code: "L1", SingleCost: domain.Numeric(1)},
		{Code: "L2", SingleCost: domain.Numeric(2)},
	})
	require.Error(t, err)
	assert.Equal(t, 0, n)
}

func ptr(v int64) *int64 { return &v }
