package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/db"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/etl"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
)

var (
	runBatchSize        int
	runAtomic           bool
	runStrictReferences bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full transform-and-load pipeline",
	Long: `Run the full-refresh ETL pipeline: extract the four source record
sets, synthesize the date dimension, normalize the product, location, and
supplier dimensions with dense surrogate keys, derive the fact table, then
truncate and repopulate the five warehouse tables and validate the result.

The reload is not atomic by default: fact batches commit independently, and
a mid-load failure leaves the warehouse partially loaded until the next run.
Use --atomic to wrap the whole reload in one transaction.

Example:
  estrella run --connection "postgres://..." --batch-size 100`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runBatchSize, "batch-size", 0,
		"fact rows inserted per batch")
	runCmd.Flags().BoolVar(&runAtomic, "atomic", false,
		"wrap the whole truncate-and-reload in one transaction")
	runCmd.Flags().BoolVar(&runStrictReferences, "strict-references", false,
		"fail the run when fact rows are dropped for unresolved references")
}

func runRun(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if runBatchSize > 0 {
		cfg.ETL.BatchSize = runBatchSize
	}
	if runAtomic {
		cfg.ETL.Atomic = true
	}
	if runStrictReferences {
		cfg.ETL.StrictReferences = true
	}

	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	pipeline := etl.NewPipeline(pool, etl.Options{
		BatchSize:        cfg.ETL.BatchSize,
		Atomic:           cfg.ETL.Atomic,
		StrictReferences: cfg.ETL.StrictReferences,
	})

	report, err := pipeline.Run(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Pipeline failed")
		return err
	}

	if !report.Passed() {
		return fmt.Errorf("referential integrity check failed: %d orphan fact rows",
			report.OrphanFacts)
	}

	logging.Info().Msg("Pipeline complete")
	return nil
}
