package etl

import (
	"context"
	"fmt"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
)

// WarehouseTables lists the five warehouse tables in load order.
var WarehouseTables = []string{
	"dim_product", "dim_location", "dim_date", "dim_supplier", "fact_inventory",
}

// Report holds the post-load validation results. Validation observes the
// loaded state; it never undoes a load.
type Report struct {
	// Counts maps each warehouse table to its row count.
	Counts map[string]int64

	// OrphanFacts is the number of fact rows whose product key has no
	// matching dim_product row.
	OrphanFacts int64
}

// Passed reports whether referential integrity held.
func (r *Report) Passed() bool {
	return r.OrphanFacts == 0
}

// Validate reads back row counts for all five tables and runs the orphan
// check between fact_inventory and dim_product.
func Validate(ctx context.Context, db DB) (*Report, error) {
	report := &Report{Counts: make(map[string]int64, len(WarehouseTables))}

	for _, table := range WarehouseTables {
		var count int64
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		report.Counts[table] = count
	}

	err := db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM fact_inventory f
        LEFT JOIN dim_product p ON f.product_key = p.product_key
        WHERE p.product_key IS NULL
    `).Scan(&report.OrphanFacts)
	if err != nil {
		return nil, fmt.Errorf("failed to run orphan check: %w", err)
	}

	event := logging.Info()
	for _, table := range WarehouseTables {
		event = event.Int64(table, report.Counts[table])
	}
	event.Int64("orphan_facts", report.OrphanFacts).
		Bool("passed", report.Passed()).
		Msg("Validated warehouse")

	return report, nil
}
