package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/datagen"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/db"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/warehouse"
)

var (
	initSeed         bool
	initDropExisting bool
	initProducts     int
	initStores       int
	initSuppliers    int
	initDays         int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the source and warehouse tables",
	Long: `Create the four operational source tables and the five warehouse
tables (star schema). With --seed, the source tables are also populated
with generated sample data so a full pipeline run can be exercised
immediately.

Example:
  estrella init --seed --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSeed, "seed", false,
		"populate source tables with generated sample data")
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing tables before initialization")
	initCmd.Flags().IntVar(&initProducts, "products", 0,
		"number of sample products to generate")
	initCmd.Flags().IntVar(&initStores, "stores", 0,
		"number of sample stores to generate")
	initCmd.Flags().IntVar(&initSuppliers, "suppliers", 0,
		"number of sample suppliers to generate")
	initCmd.Flags().IntVar(&initDays, "days", 0,
		"days of sample inventory transactions to generate")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if initSeed {
		cfg.Init.Seed = true
	}
	if initDropExisting {
		cfg.Init.DropExisting = true
	}
	if initProducts > 0 {
		cfg.Init.Products = initProducts
	}
	if initStores > 0 {
		cfg.Init.Stores = initStores
	}
	if initSuppliers > 0 {
		cfg.Init.Suppliers = initSuppliers
	}
	if initDays > 0 {
		cfg.Init.Days = initDays
	}

	if err := cfg.ValidateInit(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Init.DropExisting {
		if err := warehouse.DropSchema(ctx, pool); err != nil {
			return err
		}
	}

	if err := warehouse.CreateSchema(ctx, pool); err != nil {
		return err
	}

	if cfg.Init.Seed {
		seeder := datagen.NewSeeder(datagen.SeedConfig{
			Products:        cfg.Init.Products,
			Stores:          cfg.Init.Stores,
			Suppliers:       cfg.Init.Suppliers,
			Days:            cfg.Init.Days,
			SnapshotsPerDay: datagen.DefaultSeedConfig().SnapshotsPerDay,
		})
		if err := seeder.Seed(ctx, pool); err != nil {
			return err
		}
	}

	logging.Info().Msg("Initialization complete")
	return nil
}
