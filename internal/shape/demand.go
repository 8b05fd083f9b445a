package shape

import (
	"math"
	"time"

	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// BuildDemand converts the monthly demand plan into a weekly table. Each
// month's quantity is split across the ISO weeks its days fall into,
// proportionally to the day count, and rounded to whole units per week.
// Rows for the same (ref, week) accumulate.
func BuildDemand(rows []warehouse.DemandRow) forecast.WeeklyTable {
	demand := forecast.NewWeeklyTable()

	for _, row := range rows {
		ref := MakeRef(row.ASIN, row.ItemCode, row.Marketplace)
		if ref == "" {
			continue
		}
		for week, qty := range distributeMonth(row.MonthDate, row.Quantity) {
			demand.Add(ref, week, qty)
		}
	}
	return demand
}

// distributeMonth splits a monthly quantity across the ISO weeks covering
// that month, weighted by how many of the month's days fall in each week.
func distributeMonth(monthDate time.Time, quantity float64) map[forecast.WeekLabel]float64 {
	first := time.Date(monthDate.Year(), monthDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	totalDays := int(next.Sub(first).Hours() / 24)

	dayCount := make(map[forecast.WeekLabel]int)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		dayCount[forecast.WeekLabelFor(d)]++
	}

	out := make(map[forecast.WeekLabel]float64, len(dayCount))
	for week, days := range dayCount {
		out[week] = math.Round(quantity * float64(days) / float64(totalDays))
	}
	return out
}
