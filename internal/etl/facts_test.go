package etl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

func factFixture() ([]ProductDim, []LocationDim, []SupplierDim) {
	products := []ProductDim{
		{ProductKey: 1, ProductID: "P1"},
		{ProductKey: 2, ProductID: "P2"},
		{ProductKey: 3, ProductID: "P3"},
	}
	locations := []LocationDim{{LocationKey: 1, LocationID: "L1"}}
	suppliers := []SupplierDim{{SupplierKey: 1, SupplierID: "S1"}}
	return products, locations, suppliers
}

func TestTransformFactsResolvesKeys(t *testing.T) {
	products, locations, suppliers := factFixture()

	txns := []source.InventoryTransaction{
		{
			InventoryID:     1,
			ProductID:       "P2",
			LocationID:      "L1",
			SupplierID:      "S1",
			TransactionDate: time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC),
			QuantityOnHand:  30,
			UnitCost:        decimal.RequireFromString("12.34"),
			MinimumStock:    10,
			MaximumStock:    200,
			ReorderPoint:    25,
			UnitsSold:       4,
			UnitsReceived:   8,
		},
	}

	result := TransformFacts(txns, products, locations, suppliers)
	if len(result.Dropped) != 0 {
		t.Fatalf("Expected no drops, got %d", len(result.Dropped))
	}
	if len(result.Facts) != 1 {
		t.Fatalf("Expected 1 fact, got %d", len(result.Facts))
	}

	f := result.Facts[0]
	if f.ProductKey != 2 {
		t.Errorf("Expected product key 2, got %d", f.ProductKey)
	}
	if f.LocationKey != 1 || f.SupplierKey != 1 {
		t.Errorf("Wrong dimension keys: location %d, supplier %d",
			f.LocationKey, f.SupplierKey)
	}
	if f.DateKey != 20240507 {
		t.Errorf("Expected date key 20240507, got %d", f.DateKey)
	}
	if f.MinimumStockLevel != 10 || f.MaximumStockLevel != 200 {
		t.Errorf("Stock levels not carried: %d, %d",
			f.MinimumStockLevel, f.MaximumStockLevel)
	}
}

func TestTransformFactsTotalValueExact(t *testing.T) {
	products, locations, suppliers := factFixture()

	// 0.1 * 3 is the classic float rounding trap; decimal math must be exact.
	tests := []struct {
		unitCost string
		quantity int
		want     string
	}{
		{"0.10", 3, "0.30"},
		{"12.34", 30, "370.20"},
		{"999.99", 1000, "999990.00"},
		{"0.01", 7, "0.07"},
	}

	for _, tt := range tests {
		txns := []source.InventoryTransaction{{
			ProductID: "P1", LocationID: "L1", SupplierID: "S1",
			TransactionDate: time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC),
			QuantityOnHand:  tt.quantity,
			UnitCost:        decimal.RequireFromString(tt.unitCost),
		}}
		result := TransformFacts(txns, products, locations, suppliers)
		if len(result.Facts) != 1 {
			t.Fatalf("Expected 1 fact, got %d", len(result.Facts))
		}
		got := result.Facts[0].TotalValue
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%s * %d = %s, want %s", tt.unitCost, tt.quantity, got, tt.want)
		}
	}
}

func TestTransformFactsDropsUnresolvedReferences(t *testing.T) {
	products, locations, suppliers := factFixture()

	date := time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC)
	txns := []source.InventoryTransaction{
		{InventoryID: 1, ProductID: "P1", LocationID: "L1", SupplierID: "S1", TransactionDate: date},
		{InventoryID: 2, ProductID: "P2", LocationID: "L1", SupplierID: "S1", TransactionDate: date},
		{InventoryID: 3, ProductID: "P4", LocationID: "L1", SupplierID: "S1", TransactionDate: date},
		{InventoryID: 4, ProductID: "P1", LocationID: "L9", SupplierID: "S1", TransactionDate: date},
		{InventoryID: 5, ProductID: "P1", LocationID: "L1", SupplierID: "S9", TransactionDate: date},
	}

	result := TransformFacts(txns, products, locations, suppliers)
	if len(result.Facts) != 2 {
		t.Fatalf("Expected 2 surviving facts, got %d", len(result.Facts))
	}
	if result.Facts[0].ProductKey != 1 || result.Facts[1].ProductKey != 2 {
		t.Errorf("Survivors should be P1 and P2, got keys %d and %d",
			result.Facts[0].ProductKey, result.Facts[1].ProductKey)
	}

	if len(result.Dropped) != 3 {
		t.Fatalf("Expected 3 drops, got %d", len(result.Dropped))
	}
	want := []DropReason{
		{InventoryID: 3, Field: "product_id", Value: "P4"},
		{InventoryID: 4, Field: "location_id", Value: "L9"},
		{InventoryID: 5, Field: "supplier_id", Value: "S9"},
	}
	for i, w := range want {
		if result.Dropped[i] != w {
			t.Errorf("Drop %d = %+v, want %+v", i, result.Dropped[i], w)
		}
	}
}

func TestTransformFactsEmptyDimensions(t *testing.T) {
	txns := []source.InventoryTransaction{
		{InventoryID: 1, ProductID: "P1", LocationID: "L1", SupplierID: "S1",
			TransactionDate: time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC)},
	}
	result := TransformFacts(txns, nil, nil, nil)
	if len(result.Facts) != 0 {
		t.Errorf("Expected no facts with empty dimensions, got %d", len(result.Facts))
	}
	if len(result.Dropped) != 1 {
		t.Errorf("Expected 1 drop, got %d", len(result.Dropped))
	}
}
