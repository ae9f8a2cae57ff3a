package etl

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

func TestTransformProducts(t *testing.T) {
	products := []source.Product{
		{
			ProductID:     "P003",
			ProductName:   "whole milk 1l",
			Description:   "Fresh whole milk",
			Category:      "dairy products",
			Subcategory:   "Sub-Dairy",
			Brand:         "Brand A",
			UnitMeasure:   "L",
			RetailPrice:   decimal.RequireFromString("4.50"),
			Perishable:    true,
			ShelfLifeDays: 14,
		},
		{ProductID: "P001", ProductName: "rice", Category: "groceries"},
		{ProductID: "P002", ProductName: "soap", Category: "cleaning"},
	}

	dims := TransformProducts(products)
	if len(dims) != 3 {
		t.Fatalf("Expected 3 dims, got %d", len(dims))
	}

	// Surrogate keys are positional over extraction order, dense from 1.
	for i, d := range dims {
		if d.ProductKey != i+1 {
			t.Errorf("Expected product key %d at position %d, got %d", i+1, i, d.ProductKey)
		}
	}

	first := dims[0]
	if first.ProductID != "P003" {
		t.Errorf("Business key must be preserved, got %s", first.ProductID)
	}
	if first.ProductName != "WHOLE MILK 1L" {
		t.Errorf("Product name not uppercased: %s", first.ProductName)
	}
	if first.Category != "Dairy Products" {
		t.Errorf("Category not title-cased: %s", first.Category)
	}
	if first.ProductDescription != "Fresh whole milk" {
		t.Errorf("Description not carried as product_description: %s", first.ProductDescription)
	}
	if !first.RetailPrice.Equal(decimal.RequireFromString("4.50")) {
		t.Errorf("Retail price changed: %s", first.RetailPrice)
	}
}

func TestTransformLocations(t *testing.T) {
	stores := []source.Store{
		{LocationID: "L000", City: "lima", Country: "peru", StoreName: "Central"},
		{LocationID: "L001", City: "AREQUIPA", Country: "Chile"},
	}

	dims := TransformLocations(stores)
	if len(dims) != 2 {
		t.Fatalf("Expected 2 dims, got %d", len(dims))
	}
	if dims[0].LocationKey != 1 || dims[1].LocationKey != 2 {
		t.Errorf("Surrogate keys not dense from 1: %d, %d",
			dims[0].LocationKey, dims[1].LocationKey)
	}
	if dims[0].City != "Lima" {
		t.Errorf("City not title-cased: %s", dims[0].City)
	}
	if dims[1].City != "Arequipa" {
		t.Errorf("City not title-cased: %s", dims[1].City)
	}
	if dims[0].Country != "PERU" || dims[1].Country != "CHILE" {
		t.Errorf("Country not uppercased: %s, %s", dims[0].Country, dims[1].Country)
	}
}

func TestTransformSuppliers(t *testing.T) {
	suppliers := []source.Supplier{
		{SupplierID: "S000", SupplierName: "Acme Foods", ContactEmail: "Sales@Acme.COM"},
	}

	dims := TransformSuppliers(suppliers)
	if len(dims) != 1 {
		t.Fatalf("Expected 1 dim, got %d", len(dims))
	}
	if dims[0].SupplierKey != 1 {
		t.Errorf("Expected supplier key 1, got %d", dims[0].SupplierKey)
	}
	if dims[0].SupplierName != "ACME FOODS" {
		t.Errorf("Supplier name not uppercased: %s", dims[0].SupplierName)
	}
	if dims[0].ContactEmail != "sales@acme.com" {
		t.Errorf("Contact email not lowercased: %s", dims[0].ContactEmail)
	}
}

func TestTransformEmptySets(t *testing.T) {
	if got := TransformProducts(nil); len(got) != 0 {
		t.Errorf("Expected no product dims, got %d", len(got))
	}
	if got := TransformLocations(nil); len(got) != 0 {
		t.Errorf("Expected no location dims, got %d", len(got))
	}
	if got := TransformSuppliers(nil); len(got) != 0 {
		t.Errorf("Expected no supplier dims, got %d", len(got))
	}
}
