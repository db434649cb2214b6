package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/repair-cost/internal/api/client"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printEstimate(w io.Writer, est *domain.Estimate) error {
	tw := newTabWriter(w)
	tw.writef("FAMILY\tCODES\tCOST\tMAX\tCAPPED\n")
	for i := range est.Families {
		fc := &est.Families[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\n",
			fc.Family,
			joinCodes(fc.Codes),
			fc.Cost,
			formatMax(fc.MaxCost),
			fc.Capped,
		)
	}
	if len(est.Dropped) > 0 {
		tw.writef("\nUnknown codes:\t%s\n", joinCodes(est.Dropped))
	}
	tw.writef("\nTotal:\t%s\n", est.Total)
	return tw.finish()
}

func printFamiliesTable(w io.Writer, families []apiclient.Family) error {
	tw := newTabWriter(w)
	tw.writef("FAMILY\tCODES\n")
	for i := range families {
		tw.writef("%s\t%s\n", families[i].Name, truncate(joinCodes(families[i].Codes), 60))
	}
	return tw.finish()
}

func printPricesTable(w io.Writer, entries []domain.PriceEntry) error {
	tw := newTabWriter(w)
	tw.writef("CODE\tSINGLE\tMAX\tDESCRIPTION\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\t%s\n",
			entries[i].Code,
			entries[i].SingleCost,
			formatMax(entries[i].MaxCost),
			truncate(entries[i].Description, 40),
		)
	}
	return tw.finish()
}

func printPriceDetail(w io.Writer, e *domain.PriceEntry) error {
	tw := newTabWriter(w)
	tw.writef("Code:\t%s\n", e.Code)
	tw.writef("Description:\t%s\n", e.Description)
	tw.writef("Single cost:\t%s\n", e.SingleCost)
	tw.writef("Max cost:\t%s\n", formatMax(e.MaxCost))
	return tw.finish()
}

func printInspectionsTable(w io.Writer, inspections []domain.Inspection) error {
	tw := newTabWriter(w)
	tw.writef("ID\tREFERENCE\tCODES\tTOTAL\tCOSTED\tERROR\n")
	for i := range inspections {
		in := &inspections[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			in.ID,
			dash(in.Reference),
			joinCodes(in.Codes),
			dash(deref(in.TotalCost)),
			formatCostedAt(in),
			truncate(dash(in.CostError), 40),
		)
	}
	return tw.finish()
}

func printInspectionDetail(w io.Writer, in *domain.Inspection) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", in.ID)
	tw.writef("Reference:\t%s\n", dash(in.Reference))
	tw.writef("Codes:\t%s\n", joinCodes(in.Codes))
	tw.writef("Total:\t%s\n", dash(deref(in.TotalCost)))
	if in.CostKind != "" {
		tw.writef("Kind:\t%s\n", in.CostKind)
	}
	tw.writef("Costed:\t%s\n", formatCostedAt(in))
	if in.CostError != "" {
		tw.writef("Error:\t%s\n", in.CostError)
	}
	tw.writef("Created:\t%s\n", in.CreatedAt.Format(timeLayout))
	return tw.finish()
}

func printRecostSummary(w io.Writer, s *apiclient.RecostSummary) error {
	tw := newTabWriter(w)
	tw.writef("Costed:\t%d\n", s.Costed)
	tw.writef("  need replacement:\t%d\n", s.Replaced)
	tw.writef("  not available:\t%d\n", s.NotAvailable)
	tw.writef("Skipped (empty):\t%d\n", s.Skipped)
	tw.writef("Failed:\t%d\n", s.Failed)
	if len(s.Failures) > 0 {
		tw.writef("\nINSPECTION\tREFERENCE\tCODE\tERROR\n")
		for _, f := range s.Failures {
			tw.writef("%s\t%s\t%s\t%s\n",
				f.InspectionID,
				dash(f.Reference),
				dash(string(f.Code)),
				truncate(f.Error, 60),
			)
		}
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinCodes(codes []domain.Code) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		if c.IsAbsent() {
			continue
		}
		parts = append(parts, string(c))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func formatMax(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func formatCostedAt(in *domain.Inspection) string {
	if in.CostedAt == nil {
		return "-"
	}
	return in.CostedAt.Format(timeLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
