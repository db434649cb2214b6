package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/repair-cost/internal/api/client"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func inspectionsCmd() *cobra.Command {
	inspectionsRoot := &cobra.Command{
		Use:   "inspections",
		Short: "Record and query inspections",
		Long: "Record inspection rows of up to four defect codes and query the\n" +
			"totals stored for them.",
	}

	inspectionsRoot.AddCommand(
		inspectionsCreateCmd(),
		inspectionsListCmd(),
		inspectionsGetCmd(),
	)

	return inspectionsRoot
}

func inspectionsCreateCmd() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "create <code>...",
		Short: "Record an inspection and cost it",
		Example: `  rcc inspections create --ref LOT-42 L21 L22 L35

  # Leave a slot empty
  rcc inspections create --ref LOT-43 L9 ""`,
		Args: cobra.RangeArgs(1, domain.InspectionSlots),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.CreateInspection(cmd.Context(), reference, toCodes(args))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}

			if err := printInspectionDetail(cmd.OutOrStdout(), &resp.Inspection); err != nil {
				return err
			}
			if resp.Estimate != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				return printEstimate(cmd.OutOrStdout(), resp.Estimate)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reference, "ref", "", "caller reference such as a lot or asset tag")

	return cmd
}

func inspectionsListCmd() *cobra.Command {
	var (
		costKind  string
		reference string
		pending   bool
		failed    bool
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inspections with optional filters",
		Example: `  # Rows still waiting for a total
  rcc inspections list --pending

  # Rows whose costing failed
  rcc inspections list --failed

  # Devices to replace, newest first
  rcc inspections list --kind needs_replacement --order-by created_at`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &apiclient.ListInspectionsParams{
				CostKind:  domain.CostKind(costKind),
				Reference: reference,
				Limit:     limit,
				Offset:    offset,
				OrderBy:   orderBy,
			}
			if pending {
				costed := false
				params.Costed = &costed
			}
			if failed {
				params.Failed = &failed
			}

			c := newClient()
			resp, err := c.ListInspections(cmd.Context(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}

			if len(resp.Inspections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No inspections found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d inspections\n\n", len(resp.Inspections), resp.Total)
			return printInspectionsTable(cmd.OutOrStdout(), resp.Inspections)
		},
	}
	cmd.Flags().StringVar(&costKind, "kind", "", "result kind (numeric, needs_replacement, not_available)")
	cmd.Flags().StringVar(&reference, "ref", "", "reference prefix")
	cmd.Flags().BoolVar(&pending, "pending", false, "only rows without a stored total")
	cmd.Flags().BoolVar(&failed, "failed", false, "only rows whose costing failed")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (created_at, costed_at, reference)")

	return cmd
}

func inspectionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show inspection details",
		Example: `  rcc inspections get 5d0c6f7e-1b8e-4a55-9a55-0e1f5c0a9f11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			in, err := c.GetInspection(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), in)
			}
			return printInspectionDetail(cmd.OutOrStdout(), in)
		},
	}
}
