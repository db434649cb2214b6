package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/repair-cost/internal/config"
	"github.com/donaldgifford/repair-cost/internal/pricing"
	"github.com/donaldgifford/repair-cost/internal/store"
	"github.com/donaldgifford/repair-cost/pkg/logger"
)

const importTimeout = 2 * time.Minute

func pricesCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prices",
		Short: "Manage the price table",
	}

	root.AddCommand(pricesImportCommand(), pricesCheckCommand())
	return root
}

func pricesImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load a YAML price file into the database",
		Long: "Validates a YAML price file and upserts every entry into the\n" +
			"price_entries table used by the database price source.",
		Example: `  repair-cost prices import prices.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			entries, err := pricing.ReadFile(args[0], pricing.SentinelsFromConfig(cfg.Pricing.Sentinels))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), importTimeout)
			defer cancel()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			n, err := pricing.Import(ctx, st, entries)
			if err != nil {
				return fmt.Errorf("importing prices (%d written): %w", n, err)
			}

			log.Info("prices imported", "file", args[0], "entries", n)
			return nil
		},
	}
}

func pricesCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check FILE",
		Short:   "Validate a YAML price file without loading it anywhere",
		Example: `  repair-cost prices check prices.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := pricing.DefaultSentinels()
			if cfg, err := config.Load(cfgFile); err == nil {
				s = pricing.SentinelsFromConfig(cfg.Pricing.Sentinels)
			}

			table, err := pricing.LoadFile(args[0], s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries ok\n", args[0], table.Len())
			return nil
		},
	}
}
