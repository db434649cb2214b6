package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	assert.Equal(t, 58, c.Len(), "L1 through L58 are all classified")
	assert.Len(t, c.Families(), 25)

	tests := []struct {
		code string
		want domain.Family
	}{
		{code: "L1", want: "No Power"},
		{code: "L9", want: "Body"},
		{code: "L20", want: "Body"},
		{code: "L21", want: "Screen"},
		{code: "L31", want: "Screen"},
		{code: "L35", want: "HDD"},
		{code: "L52", want: "Battery"},
		{code: "L56", want: "Charger"},
		{code: "L58", want: "Carry Bag Damaged"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			got, ok := c.FamilyOf(domain.Code(tt.code))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_FamilyOf_Unknown(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()

	for _, code := range []string{"Z99", "L59", "l21", ""} {
		_, ok := c.FamilyOf(domain.Code(code))
		assert.False(t, ok, "code %q should not be classified", code)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		defs    []FamilyDef
		wantErr string
	}{
		{
			name: "overlapping codes",
			defs: []FamilyDef{
				{Name: "Screen", Codes: codes("L21", "L22")},
				{Name: "Panel", Codes: codes("L22")},
			},
			wantErr: `code "L22" belongs to both "Screen" and "Panel"`,
		},
		{
			name:    "empty family name",
			defs:    []FamilyDef{{Codes: codes("L1")}},
			wantErr: "family name is required",
		},
		{
			name: "duplicate family",
			defs: []FamilyDef{
				{Name: "Body", Codes: codes("L9")},
				{Name: "Body", Codes: codes("L10")},
			},
			wantErr: `family "Body" declared twice`,
		},
		{
			name:    "empty code",
			defs:    []FamilyDef{{Name: "Body", Codes: codes("L9", "")}},
			wantErr: `family "Body" has an empty code`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(tt.defs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalog_FamiliesIsACopy(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog([]FamilyDef{{Name: "Hinges", Codes: codes("L32", "L33")}})
	require.NoError(t, err)

	fams := c.Families()
	fams[0].Codes[0] = "X1"

	assert.Equal(t, codes("L32", "L33"), c.Families()[0].Codes)
}
