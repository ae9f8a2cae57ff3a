package etl

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/warehouse"
)

// DefaultBatchSize is the number of fact rows inserted per batch.
const DefaultBatchSize = 100

// Columns the product transform produces. The destination table must carry
// every one of them before any destructive step runs.
var productDimColumns = []string{
	"product_key", "product_id", "product_name", "product_description",
	"category", "subcategory", "brand", "unit_measure", "retail_price",
	"perishable", "shelf_life_days",
}

const insertProductSQL = `
    INSERT INTO dim_product (product_key, product_id, product_name,
        product_description, category, subcategory, brand, unit_measure,
        retail_price, perishable, shelf_life_days)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertLocationSQL = `
    INSERT INTO dim_location (location_key, location_id, store_name,
        store_type, address, city, state, country, zone, storage_capacity)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertDateSQL = `
    INSERT INTO dim_date (date_key, full_date, year, quarter, month,
        month_name, week, day, day_name, is_holiday, season)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertSupplierSQL = `
    INSERT INTO dim_supplier (supplier_key, supplier_id, supplier_name,
        contact_person, contact_email, phone, address, city, country,
        supply_category, lead_time_days)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertFactSQL = `
    INSERT INTO fact_inventory (product_key, location_key, date_key,
        supplier_key, quantity_on_hand, unit_cost, total_value,
        minimum_stock_level, maximum_stock_level, reorder_point, units_sold,
        units_received)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// Loader performs the full-refresh reload of the five warehouse tables.
// When db is a connection pool, fact batches commit independently; when db
// is a transaction, the caller owns atomicity.
type Loader struct {
	db        DB
	batchSize int
}

// NewLoader creates a Loader. A batchSize below 1 falls back to the default.
func NewLoader(db DB, batchSize int) *Loader {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Loader{db: db, batchSize: batchSize}
}

// ValidateProductSchema verifies that every column produced for dim_product
// exists on the destination table. It returns SchemaMismatchError listing
// the missing columns, and must run before any destructive operation.
func (l *Loader) ValidateProductSchema(ctx context.Context) error {
	existing, err := warehouse.TableColumns(ctx, l.db, "dim_product")
	if err != nil {
		return fmt.Errorf("failed to read dim_product columns: %w", err)
	}

	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[c] = struct{}{}
	}

	var missing []string
	for _, c := range productDimColumns {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaMismatchError{Table: "dim_product", Missing: missing}
	}
	return nil
}

// TruncateAll clears the five warehouse tables, fact first so dimension
// truncation never trips a foreign key.
func (l *Loader) TruncateAll(ctx context.Context) error {
	tables := []string{
		"fact_inventory", "dim_product", "dim_location", "dim_date", "dim_supplier",
	}
	for _, table := range tables {
		if _, err := l.db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	logging.Debug().Msg("Truncated warehouse tables")
	return nil
}

// LoadDimensions appends the transformed rows to the four dimension tables.
// All four must complete before the fact load begins.
func (l *Loader) LoadDimensions(ctx context.Context, products []ProductDim,
	locations []LocationDim, dates []DateDim, suppliers []SupplierDim) error {

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(insertProductSQL, p.ProductKey, p.ProductID, p.ProductName,
			p.ProductDescription, p.Category, p.Subcategory, p.Brand,
			p.UnitMeasure, p.RetailPrice, p.Perishable, p.ShelfLifeDays)
	}
	if err := l.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to load dim_product: %w", err)
	}

	batch = &pgx.Batch{}
	for _, loc := range locations {
		batch.Queue(insertLocationSQL, loc.LocationKey, loc.LocationID,
			loc.StoreName, loc.StoreType, loc.Address, loc.City, loc.State,
			loc.Country, loc.Zone, loc.StorageCapacity)
	}
	if err := l.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to load dim_location: %w", err)
	}

	batch = &pgx.Batch{}
	for _, d := range dates {
		batch.Queue(insertDateSQL, d.DateKey, d.FullDate, d.Year, d.Quarter,
			d.Month, d.MonthName, d.Week, d.Day, d.DayName, d.IsHoliday,
			d.Season)
	}
	if err := l.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to load dim_date: %w", err)
	}

	batch = &pgx.Batch{}
	for _, s := range suppliers {
		batch.Queue(insertSupplierSQL, s.SupplierKey, s.SupplierID,
			s.SupplierName, s.ContactPerson, s.ContactEmail, s.Phone,
			s.Address, s.City, s.Country, s.SupplyCategory, s.LeadTimeDays)
	}
	if err := l.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to load dim_supplier: %w", err)
	}

	logging.Info().
		Int("products", len(products)).
		Int("locations", len(locations)).
		Int("dates", len(dates)).
		Int("suppliers", len(suppliers)).
		Msg("Loaded dimension tables")

	return nil
}

// LoadFacts appends fact rows in fixed-size batches. Each batch runs as its
// own implicit transaction against a pool, so a late-batch failure leaves
// earlier batches committed. Returns the number of rows loaded.
func (l *Loader) LoadFacts(ctx context.Context, facts []FactInventory) (int, error) {
	loaded := 0
	for start := 0; start < len(facts); start += l.batchSize {
		end := min(start+l.batchSize, len(facts))

		batch := &pgx.Batch{}
		for _, f := range facts[start:end] {
			batch.Queue(insertFactSQL, f.ProductKey, f.LocationKey, f.DateKey,
				f.SupplierKey, f.QuantityOnHand, f.UnitCost, f.TotalValue,
				f.MinimumStockLevel, f.MaximumStockLevel, f.ReorderPoint,
				f.UnitsSold, f.UnitsReceived)
		}
		if err := l.sendBatch(ctx, batch); err != nil {
			return loaded, fmt.Errorf("failed to load fact batch at row %d: %w", start, err)
		}
		loaded = end
	}

	logging.Info().Int("facts", loaded).Msg("Loaded fact table")
	return loaded, nil
}

// ProductCount reads back the dim_product row count as a post-load smoke check.
func (l *Loader) ProductCount(ctx context.Context) (int64, error) {
	var count int64
	err := l.db.QueryRow(ctx, `SELECT COUNT(*) FROM dim_product`).Scan(&count)
	return count, err
}

func (l *Loader) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := l.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	return br.Close()
}
