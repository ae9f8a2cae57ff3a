package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/db"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/etl"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/warehouse"
)

var verifySamples int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report on the loaded warehouse",
	Long: `Run read-only checks against the warehouse: row counts for all five
tables, sample rows from dim_product and fact_inventory, and a four-way
orphan check across all dimension references.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifySamples, "samples", 5,
		"sample rows to print per table")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	report, err := etl.Validate(ctx, pool)
	if err != nil {
		return err
	}

	cmd.Println("Warehouse row counts:")
	for _, table := range etl.WarehouseTables {
		cmd.Printf("  %-15s %d\n", table, report.Counts[table])
	}

	for _, table := range []string{"dim_product", "fact_inventory"} {
		sample, err := warehouse.Sample(ctx, pool, table, verifySamples)
		if err != nil {
			return fmt.Errorf("failed to sample %s: %w", table, err)
		}
		cmd.Println()
		cmd.Printf("Sample of %s:\n", table)
		cmd.Println("  " + strings.Join(sample.Columns, " | "))
		for _, row := range sample.Rows {
			parts := make([]string, 0, len(row))
			for _, v := range row {
				parts = append(parts, fmt.Sprint(v))
			}
			cmd.Println("  " + strings.Join(parts, " | "))
		}
	}

	orphans, err := warehouse.FourWayOrphanCount(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to run orphan check: %w", err)
	}

	cmd.Println()
	if orphans == 0 {
		cmd.Println("Referential integrity: OK")
		return nil
	}
	return fmt.Errorf("referential integrity: %d orphan fact rows", orphans)
}
