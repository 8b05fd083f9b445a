package forecast

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ledgerWithMisses(misses map[WeekLabel]float64) *Ledger {
	return &Ledger{
		StartInventory: map[WeekLabel]float64{},
		EndInventory:   map[WeekLabel]float64{},
		SalesMissed:    misses,
	}
}

func TestRevenueMissYearEnd(t *testing.T) {
	c := NewCalculator(nil, testNow) // ISO week 10 of 2025

	ledger := ledgerWithMisses(map[WeekLabel]float64{
		"CW09-2025": 100, // before the current week, excluded
		"CW10-2025": 4,
		"CW20-2025": 6,
		"CW52-2025": 2,
		"CW05-2026": 50, // next year, excluded
	})

	got := c.revenueMissYearEnd(ledger, 2.5)
	assert.True(t, decimal.NewFromFloat(30).Equal(got), "got %s", got)
}

func TestRevenueMissYearEnd_ZeroPrice(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(map[WeekLabel]float64{"CW20-2025": 10})

	got := c.revenueMissYearEnd(ledger, 0)
	assert.True(t, got.IsZero())
}

func TestRevenueMissFromStockout(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(map[WeekLabel]float64{
		"CW15-2025": 5, // before the stockout week, excluded
		"CW20-2025": 3,
		"CW30-2025": 7,
	})
	ledger.FirstStockout = "CW15-2025"
	ledger.StockoutObserved = true
	ledger.LastTransition = "CW20-2025"

	got := c.revenueMissFromStockout(ledger, 10)
	assert.True(t, decimal.NewFromFloat(100).Equal(got), "got %s", got)
}

func TestRevenueMissFromStockout_UnparseableWeek(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(map[WeekLabel]float64{"CW20-2025": 3})
	ledger.FirstStockout = "" // never populated

	assert.True(t, c.revenueMissFromStockout(ledger, 10).IsZero())
}

func TestDaysOnHand(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(nil)
	ledger.FirstStockout = "CW20-2025" // week starting 2025-05-12

	assert.Equal(t, 68, c.daysOnHand(ledger))
}

func TestDaysOnHand_PastStockoutFloorsAtZero(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(nil)
	ledger.FirstStockout = "CW02-2025"

	assert.Equal(t, 0, c.daysOnHand(ledger))
}

func TestDaysOnHand_MalformedWeek(t *testing.T) {
	c := NewCalculator(nil, testNow)

	ledger := ledgerWithMisses(nil)
	ledger.FirstStockout = "unknown"

	assert.Equal(t, 0, c.daysOnHand(ledger))
}

func TestDaysOnHand_UsesLastTransitionWhenSet(t *testing.T) {
	c := NewCalculator(nil, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))

	ledger := ledgerWithMisses(nil)
	ledger.FirstStockout = "CW02-2025"  // in the past, would floor to zero
	ledger.LastTransition = "CW20-2025" // takes precedence

	assert.Equal(t, 68, c.daysOnHand(ledger))
}
