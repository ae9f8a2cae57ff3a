// Package etl implements the transform-and-load pipeline that turns
// operational inventory records into the star schema: surrogate key
// assignment, date dimension synthesis, fact derivation with referential
// filtering, and the full-refresh reload protocol.
package etl

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDim is a row of dim_product. The surrogate ProductKey is assigned
// densely from 1 in extraction order and is not stable across runs.
type ProductDim struct {
	ProductKey         int
	ProductID          string
	ProductName        string
	ProductDescription string
	Category           string
	Subcategory        string
	Brand              string
	UnitMeasure        string
	RetailPrice        decimal.Decimal
	Perishable         bool
	ShelfLifeDays      int
}

// LocationDim is a row of dim_location.
type LocationDim struct {
	LocationKey     int
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

// DateDim is a row of dim_date. DateKey is the date as YYYYMMDD and doubles
// as the dimension's primary identifier.
type DateDim struct {
	DateKey   int
	FullDate  time.Time
	Year      int
	Quarter   int
	Month     int
	MonthName string
	Week      int
	Day       int
	DayName   string
	IsHoliday bool
	Season    string
}

// SupplierDim is a row of dim_supplier.
type SupplierDim struct {
	SupplierKey    int
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

// FactInventory is a row of fact_inventory, referencing the four dimensions
// by surrogate or date key. TotalValue is computed with decimal arithmetic
// so currency values carry no rounding drift.
type FactInventory struct {
	ProductKey        int
	LocationKey       int
	DateKey           int
	SupplierKey       int
	QuantityOnHand    int
	UnitCost          decimal.Decimal
	TotalValue        decimal.Decimal
	MinimumStockLevel int
	MaximumStockLevel int
	ReorderPoint      int
	UnitsSold         int
	UnitsReceived     int
}
