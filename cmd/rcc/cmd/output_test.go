package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/repair-cost/internal/api/client"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPrintEstimate(t *testing.T) {
	t.Parallel()

	est := &domain.Estimate{
		Total: domain.Numeric(60),
		Families: []domain.FamilyCost{
			{
				Family:  "Screen",
				Codes:   []domain.Code{"L21", "L22"},
				Cost:    domain.Numeric(60),
				MaxCost: int64Ptr(60),
				Capped:  true,
			},
		},
		Dropped: []domain.Code{"ZZ9"},
	}

	var buf bytes.Buffer
	require.NoError(t, printEstimate(&buf, est))

	out := buf.String()
	assert.Contains(t, out, "FAMILY")
	assert.Contains(t, out, "L21,L22")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "ZZ9")
	assert.Contains(t, out, "Total:")
	assert.Contains(t, out, "60")
}

func TestPrintEstimate_Sentinel(t *testing.T) {
	t.Parallel()

	est := &domain.Estimate{Total: domain.NeedsReplacement()}

	var buf bytes.Buffer
	require.NoError(t, printEstimate(&buf, est))
	assert.Contains(t, buf.String(), domain.NeedsReplacementText)
}

func TestPrintInspectionDetail(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	in := &domain.Inspection{
		ID:        "i-1",
		Codes:     []domain.Code{"L43", ""},
		CostError: "no price for code L43 (family Camera Not Working)",
		CreatedAt: created,
	}

	var buf bytes.Buffer
	require.NoError(t, printInspectionDetail(&buf, in))

	out := buf.String()
	assert.Contains(t, out, "i-1")
	assert.Contains(t, out, "L43")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "2026-03-01 09:30:00")
	assert.NotContains(t, out, "Kind:")
}

func TestPrintRecostSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printRecostSummary(&buf, &apiclient.RecostSummary{
		Costed:  4,
		Skipped: 1,
		Failed:  1,
		Failures: []apiclient.RowFailure{
			{InspectionID: "i-2", Code: "L99", Error: "no price"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "INSPECTION")
	assert.Contains(t, out, "i-2")
	assert.Contains(t, out, "L99")
}

func TestJoinCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes []domain.Code
		want  string
	}{
		{name: "skips empty slots", codes: []domain.Code{"L1", "", "L9"}, want: "L1,L9"},
		{name: "all empty", codes: []domain.Code{"", ""}, want: "-"},
		{name: "nil", codes: nil, want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, joinCodes(tt.codes))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
