package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/repair-cost/internal/api/client"
	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <code>...",
		Short: "Estimate the repair cost of a set of defect codes",
		Long: "Sends defect codes to the API server, which groups them by part\n" +
			"family and prices each family. Nothing is stored.",
		Example: `  # Screen scratch plus crack, capped at the family maximum
  rcc estimate L21 L22

  # A must-replace code decides the whole row
  rcc estimate L1 L9 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Estimate(cmd.Context(), toCodes(args))
			if apiclient.IsStatus(err, http.StatusUnprocessableEntity) {
				return fmt.Errorf("cannot price these codes: %w", err)
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printEstimate(cmd.OutOrStdout(), &resp.Estimate)
		},
	}
}

func familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "families",
		Short:   "List part families and their codes",
		Example: `  rcc families`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			families, err := c.Families(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), families)
			}
			return printFamiliesTable(cmd.OutOrStdout(), families)
		},
	}
}

func toCodes(args []string) []domain.Code {
	codes := make([]domain.Code, len(args))
	for i, a := range args {
		codes[i] = domain.Code(a)
	}
	return codes
}
