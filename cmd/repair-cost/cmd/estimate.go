package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func estimateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimate CODE...",
		Short: "Cost a set of defect codes against the configured price table",
		Long: "Loads the configured price table and catalog and prints the estimate\n" +
			"for one inspection row without starting the server. Use \"\" for an\n" +
			"empty slot.",
		Example: `  repair-cost estimate L21 L22 L35
  repair-cost estimate --json L1 L9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.close()

			codes := make([]domain.Code, len(args))
			for i, arg := range args {
				codes[i] = domain.Code(arg)
			}

			est, err := a.engine.Estimate(codes)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(est)
			}

			out := cmd.OutOrStdout()
			for i := range est.Families {
				fc := &est.Families[i]
				capped := ""
				if fc.Capped {
					capped = " (capped)"
				}
				fmt.Fprintf(out, "%-24s %-12s %v\n", fc.Family, fc.Cost.String()+capped, fc.Codes)
			}
			if len(est.Dropped) > 0 {
				fmt.Fprintf(out, "unknown codes: %v\n", est.Dropped)
			}
			fmt.Fprintf(out, "total: %s\n", est.Total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")

	return cmd
}
