// Package source reads the operational inventory records that feed the
// warehouse pipeline: products, stores, suppliers, and stock transactions.
package source

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a raw product record as it arrives from source_products.
type Product struct {
	ProductID     string
	ProductName   string
	Description   string
	Category      string
	Subcategory   string
	Brand         string
	UnitMeasure   string
	RetailPrice   decimal.Decimal
	Perishable    bool
	ShelfLifeDays int
}

// Store is a raw store record as it arrives from source_stores.
type Store struct {
	LocationID      string
	StoreName       string
	StoreType       string
	Address         string
	City            string
	State           string
	Country         string
	Zone            string
	StorageCapacity int
}

// Supplier is a raw supplier record as it arrives from source_suppliers.
type Supplier struct {
	SupplierID     string
	SupplierName   string
	ContactPerson  string
	ContactEmail   string
	Phone          string
	Address        string
	City           string
	Country        string
	SupplyCategory string
	LeadTimeDays   int
}

// InventoryTransaction is a raw stock snapshot from source_inventory.
// Unit cost is decimal to keep currency math exact through the pipeline.
type InventoryTransaction struct {
	InventoryID     int
	ProductID       string
	LocationID      string
	SupplierID      string
	TransactionDate time.Time
	QuantityOnHand  int
	UnitCost        decimal.Decimal
	MinimumStock    int
	MaximumStock    int
	ReorderPoint    int
	UnitsSold       int
	UnitsReceived   int
}

// Data bundles the four extracted record sets handed to the pipeline.
type Data struct {
	Products     []Product
	Stores       []Store
	Suppliers    []Supplier
	Transactions []InventoryTransaction
}
