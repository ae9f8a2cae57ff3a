package warehouse

import (
	"context"
	"fmt"
)

// FourWayOrphanCount counts fact rows whose product, location, supplier, or
// date reference has no matching dimension row.
func FourWayOrphanCount(ctx context.Context, q Querier) (int64, error) {
	rows, err := q.Query(ctx, `
        SELECT COUNT(*)
        FROM fact_inventory f
        LEFT JOIN dim_product p ON f.product_key = p.product_key
        LEFT JOIN dim_location l ON f.location_key = l.location_key
        LEFT JOIN dim_supplier s ON f.supplier_key = s.supplier_key
        LEFT JOIN dim_date d ON f.date_key = d.date_key
        WHERE p.product_key IS NULL
           OR l.location_key IS NULL
           OR s.supplier_key IS NULL
           OR d.date_key IS NULL
    `)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	return count, rows.Err()
}

// TableSample holds a handful of rows from a table for report output.
type TableSample struct {
	Columns []string
	Rows    [][]any
}

// Sample reads up to limit rows from a warehouse table.
func Sample(ctx context.Context, q Querier, table string, limit int) (*TableSample, error) {
	rows, err := q.Query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sample := &TableSample{}
	for _, fd := range rows.FieldDescriptions() {
		sample.Columns = append(sample.Columns, fd.Name)
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		sample.Rows = append(sample.Rows, values)
	}
	return sample, rows.Err()
}
