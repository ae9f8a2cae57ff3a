package etl

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

var titleCaser = cases.Title(language.English)

// TransformProducts normalizes product records and assigns surrogate keys
// 1..N in extraction order. The free-text description is carried as
// product_description so it cannot collide with other entities' description
// columns in the warehouse.
func TransformProducts(products []source.Product) []ProductDim {
	dims := make([]ProductDim, 0, len(products))
	for i, p := range products {
		dims = append(dims, ProductDim{
			ProductKey:         i + 1,
			ProductID:          p.ProductID,
			ProductName:        strings.ToUpper(p.ProductName),
			ProductDescription: p.Description,
			Category:           titleCaser.String(p.Category),
			Subcategory:        p.Subcategory,
			Brand:              p.Brand,
			UnitMeasure:        p.UnitMeasure,
			RetailPrice:        p.RetailPrice,
			Perishable:         p.Perishable,
			ShelfLifeDays:      p.ShelfLifeDays,
		})
	}
	logging.Info().Int("products", len(dims)).Msg("Transformed product dimension")
	return dims
}

// TransformLocations normalizes store records into dim_location rows with
// dense surrogate keys in extraction order.
func TransformLocations(stores []source.Store) []LocationDim {
	dims := make([]LocationDim, 0, len(stores))
	for i, s := range stores {
		dims = append(dims, LocationDim{
			LocationKey:     i + 1,
			LocationID:      s.LocationID,
			StoreName:       s.StoreName,
			StoreType:       s.StoreType,
			Address:         s.Address,
			City:            titleCaser.String(s.City),
			State:           s.State,
			Country:         strings.ToUpper(s.Country),
			Zone:            s.Zone,
			StorageCapacity: s.StorageCapacity,
		})
	}
	logging.Info().Int("locations", len(dims)).Msg("Transformed location dimension")
	return dims
}

// TransformSuppliers normalizes supplier records into dim_supplier rows with
// dense surrogate keys in extraction order.
func TransformSuppliers(suppliers []source.Supplier) []SupplierDim {
	dims := make([]SupplierDim, 0, len(suppliers))
	for i, s := range suppliers {
		dims = append(dims, SupplierDim{
			SupplierKey:    i + 1,
			SupplierID:     s.SupplierID,
			SupplierName:   strings.ToUpper(s.SupplierName),
			ContactPerson:  s.ContactPerson,
			ContactEmail:   strings.ToLower(s.ContactEmail),
			Phone:          s.Phone,
			Address:        s.Address,
			City:           s.City,
			Country:        s.Country,
			SupplyCategory: s.SupplyCategory,
			LeadTimeDays:   s.LeadTimeDays,
		})
	}
	logging.Info().Int("suppliers", len(dims)).Msg("Transformed supplier dimension")
	return dims
}
