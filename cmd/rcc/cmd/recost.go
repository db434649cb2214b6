package cmd

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/repair-cost/internal/api/client"
)

func recostCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recost",
		Short: "Cost stored inspections",
		Long: "Triggers a batch recost on the server. By default only inspections\n" +
			"without a stored total are costed; --all recomputes every row.",
		Example: `  rcc recost
  rcc recost --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			summary, err := c.Recost(cmd.Context(), all)
			if apiclient.IsStatus(err, http.StatusConflict) {
				return errors.New("a recost is already running on the server; try again later")
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summary)
			}
			return printRecostSummary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "recompute every stored inspection")

	return cmd
}
