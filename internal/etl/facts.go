package etl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

// DropReason records why a fact row was excluded from the load.
type DropReason struct {
	// InventoryID identifies the source transaction.
	InventoryID int

	// Field is the reference that failed to resolve
	// (product_id, location_id, supplier_id, product_key).
	Field string

	// Value is the unresolved key value.
	Value string
}

// FactResult carries the surviving fact rows together with the structured
// drop list, so unresolved references are observable rather than silent.
type FactResult struct {
	Facts   []FactInventory
	Dropped []DropReason
}

// TransformFacts resolves each transaction's dimension references to
// surrogate keys and computes derived measures. Transactions whose business
// keys do not exist in the in-memory dimensions are excluded and reported in
// the result's drop list; excluding them is intended behavior, not failure.
func TransformFacts(txns []source.InventoryTransaction,
	products []ProductDim, locations []LocationDim, suppliers []SupplierDim) FactResult {

	productKeys := make(map[string]int, len(products))
	for _, p := range products {
		productKeys[p.ProductID] = p.ProductKey
	}
	locationKeys := make(map[string]int, len(locations))
	for _, l := range locations {
		locationKeys[l.LocationID] = l.LocationKey
	}
	supplierKeys := make(map[string]int, len(suppliers))
	for _, s := range suppliers {
		supplierKeys[s.SupplierID] = s.SupplierKey
	}

	var result FactResult
	for _, t := range txns {
		productKey, ok := productKeys[t.ProductID]
		if !ok {
			result.Dropped = append(result.Dropped, DropReason{
				InventoryID: t.InventoryID, Field: "product_id", Value: t.ProductID})
			continue
		}
		locationKey, ok := locationKeys[t.LocationID]
		if !ok {
			result.Dropped = append(result.Dropped, DropReason{
				InventoryID: t.InventoryID, Field: "location_id", Value: t.LocationID})
			continue
		}
		supplierKey, ok := supplierKeys[t.SupplierID]
		if !ok {
			result.Dropped = append(result.Dropped, DropReason{
				InventoryID: t.InventoryID, Field: "supplier_id", Value: t.SupplierID})
			continue
		}

		result.Facts = append(result.Facts, FactInventory{
			ProductKey:        productKey,
			LocationKey:       locationKey,
			DateKey:           DateKey(t.TransactionDate),
			SupplierKey:       supplierKey,
			QuantityOnHand:    t.QuantityOnHand,
			UnitCost:          t.UnitCost,
			TotalValue:        t.UnitCost.Mul(decimal.NewFromInt(int64(t.QuantityOnHand))),
			MinimumStockLevel: t.MinimumStock,
			MaximumStockLevel: t.MaximumStock,
			ReorderPoint:      t.ReorderPoint,
			UnitsSold:         t.UnitsSold,
			UnitsReceived:     t.UnitsReceived,
		})
	}

	logging.Info().
		Int("facts", len(result.Facts)).
		Int("dropped", len(result.Dropped)).
		Msg("Transformed fact table")

	return result
}

// FilterByPersistedProducts drops fact rows whose product surrogate key is
// not present in the dim_product table as currently persisted. The in-memory
// join already guarantees resolution against the freshly computed dimension;
// this second check guards against drift between that and what a previous
// (possibly partial) load left in the destination store. A failure to read
// dim_product fails the whole transform.
func FilterByPersistedProducts(ctx context.Context, db DB, facts []FactInventory) ([]FactInventory, []DropReason, error) {
	rows, err := db.Query(ctx, `SELECT product_key FROM dim_product`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read persisted product keys: %w", err)
	}
	defer rows.Close()

	validKeys := make(map[int]struct{})
	for rows.Next() {
		var key int
		if err := rows.Scan(&key); err != nil {
			return nil, nil, fmt.Errorf("failed to read persisted product keys: %w", err)
		}
		validKeys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read persisted product keys: %w", err)
	}

	var kept []FactInventory
	var dropped []DropReason
	for _, f := range facts {
		if _, ok := validKeys[f.ProductKey]; !ok {
			dropped = append(dropped, DropReason{
				Field: "product_key", Value: strconv.Itoa(f.ProductKey)})
			continue
		}
		kept = append(kept, f)
	}

	if len(dropped) > 0 {
		logging.Warn().
			Int("dropped", len(dropped)).
			Msg("Fact rows reference product keys missing from dim_product")
	}

	return kept, dropped, nil
}
