package forecast

import (
	"github.com/shopspring/decimal"
)

// yearEndWeeks returns the remaining weeks of the target year: from the
// current ISO week when the current year is the target year, otherwise the
// full 52-week cycle.
func (c *Calculator) yearEndWeeks() []WeekLabel {
	targetYear := c.now.Year()
	startWeek := 1
	if isoYear, isoWeek := c.now.ISOWeek(); isoYear == targetYear {
		startWeek = isoWeek
	}

	weeks := make([]WeekLabel, 0, 52)
	for w := startWeek; w <= 52; w++ {
		weeks = append(weeks, MakeWeekLabel(targetYear, w))
	}
	return weeks
}

// revenueMissYearEnd values the shortfall remaining in the current year:
// price x missed units from "now" through the target year's last week.
func (c *Calculator) revenueMissYearEnd(ledger *Ledger, price float64) decimal.Decimal {
	var missed float64
	for _, w := range c.yearEndWeeks() {
		missed += ledger.SalesMissed[w]
	}
	return decimal.NewFromFloat(missed).Mul(decimal.NewFromFloat(price))
}

// revenueMissFromStockout values the shortfall from the final stockout week
// through year-end. An unset or unparseable stockout week yields zero for
// this entity; one bad ref must not abort the batch.
func (c *Calculator) revenueMissFromStockout(ledger *Ledger, price float64) decimal.Decimal {
	_, startWeek, ok := ledger.FinalStockout().Parse()
	if !ok {
		return decimal.Zero
	}

	targetYear := c.now.Year()
	var missed float64
	for w := startWeek; w <= 52; w++ {
		missed += ledger.SalesMissed[MakeWeekLabel(targetYear, w)]
	}
	return decimal.NewFromFloat(missed).Mul(decimal.NewFromFloat(price))
}

// daysOnHand is the number of days from today until the first day of the
// final stockout week, floored at zero. Missing or malformed stockout weeks
// yield zero, never an error.
func (c *Calculator) daysOnHand(ledger *Ledger) int {
	start, ok := ledger.FinalStockout().WeekStart()
	if !ok {
		return 0
	}

	days := int(start.Sub(c.now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
