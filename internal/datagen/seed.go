package datagen

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
)

// Reference data
var (
	categories       = []string{"Groceries", "Dairy", "Meat", "Beverages", "Cleaning"}
	brands           = []string{"Brand A", "Brand B", "Brand C", "Brand D", "Brand E"}
	unitMeasures     = []string{"UN", "KG", "L"}
	storeTypes       = []string{"Supermarket", "Convenience", "Hypermarket", "Warehouse"}
	zones            = []string{"North", "South", "East", "West", "Central"}
	supplyCategories = []string{"Food", "Beverages", "Cleaning", "General"}
)

// SeedConfig controls how much sample data is generated.
type SeedConfig struct {
	Products  int
	Stores    int
	Suppliers int

	// Days is the span of inventory transaction dates, ending yesterday.
	Days int

	// SnapshotsPerDay is the number of inventory rows per store per day.
	SnapshotsPerDay int
}

// DefaultSeedConfig returns the default sample data sizing.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Products:        50,
		Stores:          10,
		Suppliers:       8,
		Days:            90,
		SnapshotsPerDay: 5,
	}
}

// Seeder populates the source tables with generated sample data.
type Seeder struct {
	faker *Faker
	cfg   SeedConfig
}

// NewSeeder creates a Seeder.
func NewSeeder(cfg SeedConfig) *Seeder {
	if cfg.SnapshotsPerDay < 1 {
		cfg.SnapshotsPerDay = 5
	}
	return &Seeder{faker: NewFaker(), cfg: cfg}
}

// Seed generates and inserts sample rows for the four source tables.
// Business keys are zero-padded (P000, L000, S000) so extraction order by
// primary key matches generation order.
func (s *Seeder) Seed(ctx context.Context, pool *pgxpool.Pool) error {
	productIDs, err := s.seedProducts(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	storeIDs, err := s.seedStores(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to seed stores: %w", err)
	}
	supplierIDs, err := s.seedSuppliers(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to seed suppliers: %w", err)
	}
	if err := s.seedInventory(ctx, pool, productIDs, storeIDs, supplierIDs); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	batch := &pgx.Batch{}
	ids := make([]string, 0, s.cfg.Products)
	for i := 0; i < s.cfg.Products; i++ {
		id := fmt.Sprintf("P%03d", i)
		ids = append(ids, id)
		category := Choose(s.faker, categories)
		batch.Queue(`
            INSERT INTO source_products (product_id, product_name, description,
                category, subcategory, brand, unit_measure, retail_price,
                perishable, shelf_life_days)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			id,
			s.faker.ProductName(),
			s.faker.ProductDescription(),
			category,
			"Sub-"+category,
			Choose(s.faker, brands),
			Choose(s.faker, unitMeasures),
			decimal.NewFromFloat(s.faker.Price(10, 1000)).Round(2),
			s.faker.Bool(),
			s.faker.Int(7, 365),
		)
	}
	if err := sendBatch(ctx, pool, batch); err != nil {
		return nil, err
	}
	logging.Info().Int("products", len(ids)).Msg("Seeded source_products")
	return ids, nil
}

func (s *Seeder) seedStores(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	batch := &pgx.Batch{}
	ids := make([]string, 0, s.cfg.Stores)
	for i := 0; i < s.cfg.Stores; i++ {
		id := fmt.Sprintf("L%03d", i)
		ids = append(ids, id)
		batch.Queue(`
            INSERT INTO source_stores (location_id, store_name, store_type,
                address, city, state, country, zone, storage_capacity)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			id,
			s.faker.Company(),
			Choose(s.faker, storeTypes),
			s.faker.Street(),
			s.faker.City(),
			s.faker.State(),
			s.faker.Country(),
			Choose(s.faker, zones),
			s.faker.Int(1000, 10000),
		)
	}
	if err := sendBatch(ctx, pool, batch); err != nil {
		return nil, err
	}
	logging.Info().Int("stores", len(ids)).Msg("Seeded source_stores")
	return ids, nil
}

func (s *Seeder) seedSuppliers(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	batch := &pgx.Batch{}
	ids := make([]string, 0, s.cfg.Suppliers)
	for i := 0; i < s.cfg.Suppliers; i++ {
		id := fmt.Sprintf("S%03d", i)
		ids = append(ids, id)
		batch.Queue(`
            INSERT INTO source_suppliers (supplier_id, supplier_name,
                contact_person, contact_email, phone, address, city, country,
                supply_category, lead_time_days)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			id,
			s.faker.Company(),
			s.faker.Name(),
			s.faker.Email(),
			s.faker.Phone(),
			s.faker.Street(),
			s.faker.City(),
			s.faker.Country(),
			Choose(s.faker, supplyCategories),
			s.faker.Int(1, 30),
		)
	}
	if err := sendBatch(ctx, pool, batch); err != nil {
		return nil, err
	}
	logging.Info().Int("suppliers", len(ids)).Msg("Seeded source_suppliers")
	return ids, nil
}

func (s *Seeder) seedInventory(ctx context.Context, pool *pgxpool.Pool,
	productIDs, storeIDs, supplierIDs []string) error {

	end := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(s.cfg.Days - 1))

	total := 0
	batch := &pgx.Batch{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, storeID := range storeIDs {
			for i := 0; i < s.cfg.SnapshotsPerDay; i++ {
				onHand := s.faker.Int(0, 500)
				batch.Queue(`
                    INSERT INTO source_inventory (product_id, location_id,
                        supplier_id, transaction_date, quantity_on_hand,
                        unit_cost, minimum_stock, maximum_stock, reorder_point,
                        units_sold, units_received)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
					Choose(s.faker, productIDs),
					storeID,
					Choose(s.faker, supplierIDs),
					day,
					onHand,
					decimal.NewFromFloat(s.faker.Price(5, 500)).Round(2),
					s.faker.Int(10, 50),
					s.faker.Int(200, 600),
					s.faker.Int(20, 100),
					s.faker.Int(0, 100),
					s.faker.Int(0, 100),
				)
				total++

				if batch.Len() >= 500 {
					if err := sendBatch(ctx, pool, batch); err != nil {
						return err
					}
					batch = &pgx.Batch{}
				}
			}
		}
	}
	if err := sendBatch(ctx, pool, batch); err != nil {
		return err
	}

	logging.Info().Int("transactions", total).Msg("Seeded source_inventory")
	return nil
}

func sendBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := pool.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	return br.Close()
}
