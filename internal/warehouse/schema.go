// Package warehouse owns the physical layout of the star schema and the
// operational source tables it is derived from.
package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
)

// Querier is the read-only query surface TableColumns needs. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Schema SQL for the operational source tables.
const createSourceSchemaSQL = `
CREATE TABLE IF NOT EXISTS source_products (
    product_id      VARCHAR(10) PRIMARY KEY,
    product_name    VARCHAR(100),
    description     TEXT,
    category        VARCHAR(50),
    subcategory     VARCHAR(50),
    brand           VARCHAR(50),
    unit_measure    VARCHAR(20),
    retail_price    NUMERIC(10,2),
    perishable      BOOLEAN,
    shelf_life_days INTEGER
);

CREATE TABLE IF NOT EXISTS source_stores (
    location_id      VARCHAR(10) PRIMARY KEY,
    store_name       VARCHAR(100),
    store_type       VARCHAR(50),
    address          VARCHAR(200),
    city             VARCHAR(100),
    state            VARCHAR(50),
    country          VARCHAR(50),
    zone             VARCHAR(50),
    storage_capacity INTEGER
);

CREATE TABLE IF NOT EXISTS source_suppliers (
    supplier_id     VARCHAR(10) PRIMARY KEY,
    supplier_name   VARCHAR(100),
    contact_person  VARCHAR(100),
    contact_email   VARCHAR(100),
    phone           VARCHAR(20),
    address         VARCHAR(200),
    city            VARCHAR(100),
    country         VARCHAR(50),
    supply_category VARCHAR(50),
    lead_time_days  INTEGER
);

CREATE TABLE IF NOT EXISTS source_inventory (
    inventory_id     SERIAL PRIMARY KEY,
    product_id       VARCHAR(10) REFERENCES source_products(product_id),
    location_id      VARCHAR(10) REFERENCES source_stores(location_id),
    supplier_id      VARCHAR(10) REFERENCES source_suppliers(supplier_id),
    transaction_date DATE,
    quantity_on_hand INTEGER,
    unit_cost        NUMERIC(10,2),
    minimum_stock    INTEGER,
    maximum_stock    INTEGER,
    reorder_point    INTEGER,
    units_sold       INTEGER,
    units_received   INTEGER
);
`

// Schema SQL for the star schema: four dimensions and one fact table.
const createWarehouseSchemaSQL = `
CREATE TABLE IF NOT EXISTS dim_product (
    product_key         INTEGER PRIMARY KEY,
    product_id          VARCHAR(10) NOT NULL,
    product_name        VARCHAR(100),
    product_description TEXT,
    category            VARCHAR(50),
    subcategory         VARCHAR(50),
    brand               VARCHAR(50),
    unit_measure        VARCHAR(20),
    retail_price        NUMERIC(10,2),
    perishable          BOOLEAN,
    shelf_life_days     INTEGER
);

CREATE TABLE IF NOT EXISTS dim_location (
    location_key     INTEGER PRIMARY KEY,
    location_id      VARCHAR(10) NOT NULL,
    store_name       VARCHAR(100),
    store_type       VARCHAR(50),
    address          VARCHAR(200),
    city             VARCHAR(100),
    state            VARCHAR(50),
    country          VARCHAR(50),
    zone             VARCHAR(50),
    storage_capacity INTEGER
);

CREATE TABLE IF NOT EXISTS dim_date (
    date_key   INTEGER PRIMARY KEY,
    full_date  DATE NOT NULL,
    year       INTEGER NOT NULL,
    quarter    INTEGER NOT NULL,
    month      INTEGER NOT NULL,
    month_name VARCHAR(9) NOT NULL,
    week       INTEGER NOT NULL,
    day        INTEGER NOT NULL,
    day_name   VARCHAR(9) NOT NULL,
    is_holiday BOOLEAN NOT NULL,
    season     VARCHAR(20) NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_supplier (
    supplier_key    INTEGER PRIMARY KEY,
    supplier_id     VARCHAR(10) NOT NULL,
    supplier_name   VARCHAR(100),
    contact_person  VARCHAR(100),
    contact_email   VARCHAR(100),
    phone           VARCHAR(20),
    address         VARCHAR(200),
    city            VARCHAR(100),
    country         VARCHAR(50),
    supply_category VARCHAR(50),
    lead_time_days  INTEGER
);

CREATE TABLE IF NOT EXISTS fact_inventory (
    inventory_key       SERIAL PRIMARY KEY,
    product_key         INTEGER REFERENCES dim_product(product_key),
    location_key        INTEGER REFERENCES dim_location(location_key),
    date_key            INTEGER REFERENCES dim_date(date_key),
    supplier_key        INTEGER REFERENCES dim_supplier(supplier_key),
    quantity_on_hand    INTEGER,
    unit_cost           NUMERIC(10,2),
    total_value         NUMERIC(14,2),
    minimum_stock_level INTEGER,
    maximum_stock_level INTEGER,
    reorder_point       INTEGER,
    units_sold          INTEGER,
    units_received      INTEGER
);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS fact_inventory;
DROP TABLE IF EXISTS dim_product;
DROP TABLE IF EXISTS dim_location;
DROP TABLE IF EXISTS dim_date;
DROP TABLE IF EXISTS dim_supplier;
DROP TABLE IF EXISTS source_inventory;
DROP TABLE IF EXISTS source_products;
DROP TABLE IF EXISTS source_stores;
DROP TABLE IF EXISTS source_suppliers;
`

// CreateSchema creates the source tables and the star schema.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	logging.Info().Msg("Creating source schema")
	if _, err := pool.Exec(ctx, createSourceSchemaSQL); err != nil {
		return fmt.Errorf("failed to create source schema: %w", err)
	}

	logging.Info().Msg("Creating warehouse schema")
	if _, err := pool.Exec(ctx, createWarehouseSchemaSQL); err != nil {
		return fmt.Errorf("failed to create warehouse schema: %w", err)
	}

	return nil
}

// DropSchema drops all estrella tables, fact before dimensions.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	logging.Info().Msg("Dropping schema")
	if _, err := pool.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

// TableColumns returns the column names of a table as known to the database.
func TableColumns(ctx context.Context, q Querier, table string) ([]string, error) {
	rows, err := q.Query(ctx, `
        SELECT column_name
        FROM information_schema.columns
        WHERE table_name = $1
    `, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
