// Package main is the entry point for estrella.
package main

import (
	"fmt"
	"os"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
