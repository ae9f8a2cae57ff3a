package etl

import (
	"strings"
	"testing"
)

func TestSchemaMismatchErrorMessage(t *testing.T) {
	err := &SchemaMismatchError{
		Table:   "dim_product",
		Missing: []string{"product_description", "shelf_life_days"},
	}
	msg := err.Error()
	if !strings.Contains(msg, "dim_product") {
		t.Errorf("Message should name the table: %s", msg)
	}
	if !strings.Contains(msg, "product_description") || !strings.Contains(msg, "shelf_life_days") {
		t.Errorf("Message should list missing columns: %s", msg)
	}
}

func TestEmptyInputErrorMessage(t *testing.T) {
	err := &EmptyInputError{Table: "source_inventory"}
	if !strings.Contains(err.Error(), "source_inventory") {
		t.Errorf("Message should name the empty table: %s", err.Error())
	}
}

func TestReferentialDropErrorMessage(t *testing.T) {
	err := &ReferentialDropError{
		Dropped: []DropReason{
			{InventoryID: 1, Field: "product_id", Value: "P9"},
			{InventoryID: 2, Field: "supplier_id", Value: "S9"},
		},
	}
	if !strings.Contains(err.Error(), "2") {
		t.Errorf("Message should carry the drop count: %s", err.Error())
	}
}
