package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
)

// ReadAll extracts the four source record sets. Each set is read ordered by
// its primary key so extraction order, and therefore surrogate key
// assignment, is deterministic across runs over unchanged data.
func ReadAll(ctx context.Context, pool *pgxpool.Pool) (*Data, error) {
	products, err := ReadProducts(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	stores, err := ReadStores(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to read stores: %w", err)
	}
	suppliers, err := ReadSuppliers(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers: %w", err)
	}
	transactions, err := ReadTransactions(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory transactions: %w", err)
	}

	logging.Info().
		Int("products", len(products)).
		Int("stores", len(stores)).
		Int("suppliers", len(suppliers)).
		Int("transactions", len(transactions)).
		Msg("Extracted source data")

	return &Data{
		Products:     products,
		Stores:       stores,
		Suppliers:    suppliers,
		Transactions: transactions,
	}, nil
}

// ReadProducts reads all rows from source_products.
func ReadProducts(ctx context.Context, pool *pgxpool.Pool) ([]Product, error) {
	rows, err := pool.Query(ctx, `
        SELECT product_id, product_name, description, category, subcategory,
               brand, unit_measure, retail_price, perishable, shelf_life_days
        FROM source_products
        ORDER BY product_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Description,
			&p.Category, &p.Subcategory, &p.Brand, &p.UnitMeasure,
			&p.RetailPrice, &p.Perishable, &p.ShelfLifeDays); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ReadStores reads all rows from source_stores.
func ReadStores(ctx context.Context, pool *pgxpool.Pool) ([]Store, error) {
	rows, err := pool.Query(ctx, `
        SELECT location_id, store_name, store_type, address, city, state,
               country, zone, storage_capacity
        FROM source_stores
        ORDER BY location_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.LocationID, &s.StoreName, &s.StoreType,
			&s.Address, &s.City, &s.State, &s.Country, &s.Zone,
			&s.StorageCapacity); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// ReadSuppliers reads all rows from source_suppliers.
func ReadSuppliers(ctx context.Context, pool *pgxpool.Pool) ([]Supplier, error) {
	rows, err := pool.Query(ctx, `
        SELECT supplier_id, supplier_name, contact_person, contact_email,
               phone, address, city, country, supply_category, lead_time_days
        FROM source_suppliers
        ORDER BY supplier_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.SupplierID, &s.SupplierName, &s.ContactPerson,
			&s.ContactEmail, &s.Phone, &s.Address, &s.City, &s.Country,
			&s.SupplyCategory, &s.LeadTimeDays); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// ReadTransactions reads all rows from source_inventory.
func ReadTransactions(ctx context.Context, pool *pgxpool.Pool) ([]InventoryTransaction, error) {
	rows, err := pool.Query(ctx, `
        SELECT inventory_id, product_id, location_id, supplier_id,
               transaction_date, quantity_on_hand, unit_cost, minimum_stock,
               maximum_stock, reorder_point, units_sold, units_received
        FROM source_inventory
        ORDER BY inventory_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []InventoryTransaction
	for rows.Next() {
		var t InventoryTransaction
		if err := rows.Scan(&t.InventoryID, &t.ProductID, &t.LocationID,
			&t.SupplierID, &t.TransactionDate, &t.QuantityOnHand, &t.UnitCost,
			&t.MinimumStock, &t.MaximumStock, &t.ReorderPoint, &t.UnitsSold,
			&t.UnitsReceived); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
