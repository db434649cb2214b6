package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recostCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recost",
		Short: "Cost stored inspections once and exit",
		Long: "Runs a single batch recost against the database. By default only\n" +
			"inspections without a stored total are costed; --all recomputes\n" +
			"every row, for example after a price change.",
		Example: `  repair-cost recost
  repair-cost recost --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.close()

			recost := a.engine.RecostPending
			if all {
				recost = a.engine.RecostAll
			}

			summary, err := recost(cmd.Context())
			if err != nil {
				return fmt.Errorf("recost: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"costed %d (replace %d, n/a %d), skipped %d, failed %d\n",
				summary.Costed, summary.Replaced, summary.NotAvailable,
				summary.Skipped, summary.Failed,
			)
			for _, f := range summary.Failures {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s: %s\n", f.InspectionID, f.Reference, f.Error)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "recompute every stored inspection")

	return cmd
}
