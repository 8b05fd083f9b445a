// Package forecast implements the week-by-week inventory availability
// projection: the waterfall simulation over the generated calendar, the
// revenue impact and days-on-hand metrics derived from its stockout markers,
// the transfer-order and expedite recommendations, and the per-entity
// replenishment lead times.
package forecast

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/leadtime"
)

// Input carries all tables one run consumes. Tables are aligned on the union
// of refs by construction of WeeklyTable/ScalarTable zero defaults.
type Input struct {
	Demand            WeeklyTable
	Inbound           WeeklyTable
	SignedPO          WeeklyTable
	UnsignedPO        WeeklyTable
	StartingInventory ScalarTable
	Prices            ScalarTable
	Attributes        map[string]Attributes
}

// Calculator runs the full calculation chain for one "now". It is stateless
// across runs; the lead-time book is shared and read-only.
type Calculator struct {
	book *leadtime.Book
	now  time.Time
}

// NewCalculator builds a calculator for the given lookup book and reference
// time. A nil book falls back to the built-in lookup tables.
func NewCalculator(book *leadtime.Book, now time.Time) *Calculator {
	if book == nil {
		book = leadtime.Default()
	}
	return &Calculator{book: book, now: now}
}

// CalculateAll runs the waterfall simulation and every derived calculator,
// returning the final table and run summary. Per-entity degradation is
// silent; only the empty calendar is surfaced, and even that returns an
// empty result rather than an error.
func (c *Calculator) CalculateAll(in Input) *Results {
	log.Info().Msg("starting inventory availability calculations")

	calendar := GenerateCalendar(c.now)

	waterfall := RunWaterfall(WaterfallInput{
		Calendar:          calendar,
		StartingInventory: in.StartingInventory,
		Demand:            in.Demand,
		Inbound:           in.Inbound,
		SignedPO:          in.SignedPO,
		UnsignedPO:        in.UnsignedPO,
	})

	results := &Results{
		Weeks:     waterfall.Weeks,
		Waterfall: waterfall,
		Rows:      make(map[string]*Row, len(waterfall.Ledgers)),
	}

	for ref, ledger := range waterfall.Ledgers {
		attrs := in.Attributes[ref]
		price := in.Prices.Get(ref)

		row := &Row{
			Ref:                ref,
			Marketplace:        attrs.Marketplace,
			ShippingRegion:     attrs.ShippingRegion,
			FinalSalesPrice:    price,
			FirstStockoutWeek:  ledger.FirstStockout,
			LastTransitionWeek: ledger.LastTransition,
			FinalStockoutWeek:  ledger.FinalStockout(),
			StockoutObserved:   ledger.StockoutObserved,
		}

		row.RevenueMissYearEnd = c.revenueMissYearEnd(ledger, price)
		row.RevenueMissFromStockout = c.revenueMissFromStockout(ledger, price)
		row.DaysOnHand = c.daysOnHand(ledger)

		row.FutureDemand7w = c.futureDemand(in.Demand, ref, 7)
		row.FutureDemand10w = c.futureDemand(in.Demand, ref, 10)
		row.FutureDemand14w = c.futureDemand(in.Demand, ref, 14)
		row.FutureDemand18w = c.futureDemand(in.Demand, ref, 18)

		c.recommend(row, attrs)
		c.applyLeadTimes(row, attrs)

		results.Rows[ref] = row
	}

	results.Summary = c.summarize(in.Demand, waterfall)
	results.Summary.Entities = len(results.Rows)

	log.Info().
		Int("entities", results.Summary.Entities).
		Int("weeks", results.Summary.Weeks).
		Float64("demand_coverage_pct", results.Summary.DemandCoveragePct).
		Int("stockout_count", results.Summary.StockoutCount).
		Msg("inventory availability calculations completed")

	return results
}

// summarize derives the run-level scalars: overall demand coverage across
// the simulated horizon and the number of entities that hit a stockout.
// Coverage is defined as exactly 100% when there is no demand at all.
func (c *Calculator) summarize(demand WeeklyTable, waterfall *WaterfallResult) Summary {
	summary := Summary{Weeks: len(waterfall.Weeks)}

	var totalDemand, totalMissed float64
	for ref, ledger := range waterfall.Ledgers {
		totalDemand += demand.Sum(ref, waterfall.Weeks)
		for _, w := range waterfall.Weeks {
			totalMissed += ledger.SalesMissed[w]
		}
		if ledger.StockoutObserved || ledger.LastTransition != "" {
			summary.StockoutCount++
		}
	}

	if totalDemand > 0 {
		summary.DemandCoveragePct = (totalDemand - totalMissed) / totalDemand * 100
	} else {
		summary.DemandCoveragePct = 100.0
	}
	return summary
}
