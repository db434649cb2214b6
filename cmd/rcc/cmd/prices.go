package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func pricesCmd() *cobra.Command {
	pricesRoot := &cobra.Command{
		Use:   "prices [code]",
		Short: "Show the loaded price table",
		Long: "Without arguments, lists every entry in the server's price table.\n" +
			"With a code, shows that entry; codes match regardless of case.",
		Example: `  rcc prices
  rcc prices l21`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			if len(args) == 1 {
				e, err := c.Price(cmd.Context(), domain.Code(args[0]))
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), e)
				}
				return printPriceDetail(cmd.OutOrStdout(), e)
			}

			entries, err := c.Prices(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), entries)
			}
			return printPricesTable(cmd.OutOrStdout(), entries)
		},
	}

	pricesRoot.AddCommand(pricesReloadCmd())
	return pricesRoot
}

func pricesReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reload",
		Short:   "Reload the price table from its configured source",
		Example: `  rcc prices reload`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			n, err := c.ReloadPrices(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d price entries.\n", n)
			return nil
		},
	}
}
