package etl

import (
	"errors"
	"testing"
	"time"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

func txnOn(year int, month time.Month, day int) source.InventoryTransaction {
	return source.InventoryTransaction{
		TransactionDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildDateDimEmptyInput(t *testing.T) {
	_, err := BuildDateDim(nil)
	if err == nil {
		t.Fatal("Expected error for empty transaction set, got nil")
	}
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("Expected EmptyInputError, got %T: %v", err, err)
	}
}

func TestBuildDateDimRange(t *testing.T) {
	tests := []struct {
		name string
		txns []source.InventoryTransaction
		want int
	}{
		{
			name: "single day",
			txns: []source.InventoryTransaction{txnOn(2024, time.March, 15)},
			want: 1,
		},
		{
			name: "ten day span",
			txns: []source.InventoryTransaction{
				txnOn(2024, time.March, 10),
				txnOn(2024, time.March, 19),
			},
			want: 10,
		},
		{
			name: "unordered dates with interior duplicates",
			txns: []source.InventoryTransaction{
				txnOn(2024, time.June, 5),
				txnOn(2024, time.June, 1),
				txnOn(2024, time.June, 3),
				txnOn(2024, time.June, 3),
			},
			want: 5,
		},
		{
			name: "spans a leap day",
			txns: []source.InventoryTransaction{
				txnOn(2024, time.February, 28),
				txnOn(2024, time.March, 1),
			},
			want: 3,
		},
		{
			name: "spans a year boundary",
			txns: []source.InventoryTransaction{
				txnOn(2023, time.December, 30),
				txnOn(2024, time.January, 2),
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := BuildDateDim(tt.txns)
			if err != nil {
				t.Fatalf("BuildDateDim failed: %v", err)
			}
			if len(dates) != tt.want {
				t.Errorf("Expected %d dates, got %d", tt.want, len(dates))
			}

			seen := make(map[int]bool)
			for i, d := range dates {
				if seen[d.DateKey] {
					t.Errorf("Duplicate date key %d", d.DateKey)
				}
				seen[d.DateKey] = true
				if i > 0 && !dates[i-1].FullDate.Before(d.FullDate) {
					t.Errorf("Dates not ascending at index %d", i)
				}
			}
		})
	}
}

func TestBuildDateDimAttributes(t *testing.T) {
	dates, err := BuildDateDim([]source.InventoryTransaction{
		txnOn(2024, time.February, 29),
	})
	if err != nil {
		t.Fatalf("BuildDateDim failed: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("Expected 1 date, got %d", len(dates))
	}

	d := dates[0]
	if d.DateKey != 20240229 {
		t.Errorf("Expected date key 20240229, got %d", d.DateKey)
	}
	if d.Year != 2024 || d.Month != 2 || d.Day != 29 {
		t.Errorf("Wrong date parts: %d-%d-%d", d.Year, d.Month, d.Day)
	}
	if d.Quarter != 1 {
		t.Errorf("Expected quarter 1, got %d", d.Quarter)
	}
	if d.MonthName != "February" {
		t.Errorf("Expected month name February, got %s", d.MonthName)
	}
	if d.DayName != "Thursday" {
		t.Errorf("Expected day name Thursday, got %s", d.DayName)
	}
	if d.Week != 9 {
		t.Errorf("Expected ISO week 9, got %d", d.Week)
	}
	if d.IsHoliday {
		t.Error("Holiday flag should always be false")
	}
	if d.Season != "Summer" {
		t.Errorf("Expected season Summer for February, got %s", d.Season)
	}
}

func TestSeasonForMonth(t *testing.T) {
	want := map[time.Month]string{
		time.January:   "Summer",
		time.February:  "Summer",
		time.March:     "Fall",
		time.April:     "Fall",
		time.May:       "Fall",
		time.June:      "Winter",
		time.July:      "Winter",
		time.August:    "Winter",
		time.September: "Spring",
		time.October:   "Spring",
		time.November:  "Spring",
		time.December:  "Summer",
	}

	for m := time.January; m <= time.December; m++ {
		if got := SeasonForMonth(m); got != want[m] {
			t.Errorf("SeasonForMonth(%s) = %s, want %s", m, got, want[m])
		}
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 20240101},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 20241231},
		{time.Date(1999, time.September, 9, 0, 0, 0, 0, time.UTC), 19990909},
	}
	for _, tt := range tests {
		if got := DateKey(tt.date); got != tt.want {
			t.Errorf("DateKey(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
