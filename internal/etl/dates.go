package etl

import (
	"time"

	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/logging"
	"github.com/olivercorrea/datawarehouse-estrella-ETL/internal/source"
)

// Season labels follow the Southern Hemisphere calendar: December through
// February is summer.
var seasonByMonth = map[time.Month]string{
	time.December: "Summer", time.January: "Summer", time.February: "Summer",
	time.March: "Fall", time.April: "Fall", time.May: "Fall",
	time.June: "Winter", time.July: "Winter", time.August: "Winter",
	time.September: "Spring", time.October: "Spring", time.November: "Spring",
}

// SeasonForMonth returns the season label for a calendar month.
func SeasonForMonth(m time.Month) string {
	return seasonByMonth[m]
}

// DateKey formats a date as its YYYYMMDD integer key.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// BuildDateDim derives the calendar date dimension spanning the observed
// transaction date range, one row per day inclusive of both endpoints,
// ascending. It is a pure function of the transaction set and returns
// EmptyInputError when there are no transactions to derive a range from.
func BuildDateDim(txns []source.InventoryTransaction) ([]DateDim, error) {
	if len(txns) == 0 {
		return nil, &EmptyInputError{Table: "source_inventory"}
	}

	minDate := truncateDay(txns[0].TransactionDate)
	maxDate := minDate
	for _, t := range txns[1:] {
		d := truncateDay(t.TransactionDate)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	var dates []DateDim
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		dates = append(dates, DateDim{
			DateKey:   DateKey(d),
			FullDate:  d,
			Year:      d.Year(),
			Quarter:   (int(d.Month())-1)/3 + 1,
			Month:     int(d.Month()),
			MonthName: d.Month().String(),
			Week:      week,
			Day:       d.Day(),
			DayName:   d.Weekday().String(),
			IsHoliday: false,
			Season:    SeasonForMonth(d.Month()),
		})
	}

	logging.Info().
		Int("dates", len(dates)).
		Int("from", DateKey(minDate)).
		Int("to", DateKey(maxDate)).
		Msg("Built date dimension")

	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
