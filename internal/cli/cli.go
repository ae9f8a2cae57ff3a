// Package cli implements the command-line interface for estrella.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/config"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "estrella",
		Short: "Star-schema ETL for operational inventory data",
		Long: `estrella transforms operational inventory records (products, stores,
suppliers, stock transactions) into a dimensional warehouse in PostgreSQL:
one fact table and four dimension tables, reloaded in full on every run.

The pipeline assigns dense surrogate keys, synthesizes the calendar date
dimension over the observed transaction range, resolves fact rows against
the dimensions with referential filtering, and validates the result.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./estrella.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
