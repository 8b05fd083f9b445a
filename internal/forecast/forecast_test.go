package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAll_EndToEnd(t *testing.T) {
	c := NewCalculator(nil, testNow) // ISO week 10 of 2025

	demand := NewWeeklyTable()
	demand.Set("A", "CW10-2025", 150)
	demand.Set("B", "CW12-2025", 10)
	signed := NewWeeklyTable()
	signed.Set("A", "CW10-2025", 20)

	results := c.CalculateAll(Input{
		Demand:            demand,
		Inbound:           NewWeeklyTable(),
		SignedPO:          signed,
		UnsignedPO:        NewWeeklyTable(),
		StartingInventory: ScalarTable{"A": 100, "B": 500},
		Prices:            ScalarTable{"A": 2},
		Attributes: map[string]Attributes{
			"A": {Marketplace: "US", ShippingRegion: "CN"},
		},
	})

	require.Len(t, results.Rows, 2)

	a := results.Rows["A"]
	require.NotNil(t, a)
	assert.True(t, a.StockoutObserved)
	assert.Equal(t, WeekLabel("CW10-2025"), a.FirstStockoutWeek)
	assert.Equal(t, WeekLabel("CW10-2025"), a.FinalStockoutWeek)
	// 30 missed units at price 2.
	assert.True(t, decimal.NewFromFloat(60).Equal(a.RevenueMissYearEnd), "got %s", a.RevenueMissYearEnd)
	// The stockout week started before "now", so days on hand floors at zero.
	assert.Equal(t, 0, a.DaysOnHand)
	assert.Equal(t, 150.0, a.FutureDemand7w)
	assert.Equal(t, "US", a.Marketplace)
	assert.Equal(t, 39, a.TransportLeadDays)

	b := results.Rows["B"]
	require.NotNil(t, b)
	assert.False(t, b.StockoutObserved)
	assert.Equal(t, results.Weeks[len(results.Weeks)-1], b.FirstStockoutWeek)
	assert.True(t, b.RevenueMissYearEnd.IsZero())

	// 160 demanded, 30 missed.
	assert.Equal(t, 2, results.Summary.Entities)
	assert.Equal(t, 1, results.Summary.StockoutCount)
	assert.InDelta(t, 81.25, results.Summary.DemandCoveragePct, 1e-9)
	assert.Equal(t, len(results.Weeks), results.Summary.Weeks)
}

func TestCalculateAll_NoDemandIsFullCoverage(t *testing.T) {
	c := NewCalculator(nil, testNow)

	results := c.CalculateAll(Input{
		Demand:            NewWeeklyTable(),
		Inbound:           NewWeeklyTable(),
		SignedPO:          NewWeeklyTable(),
		UnsignedPO:        NewWeeklyTable(),
		StartingInventory: ScalarTable{"A": 10},
		Prices:            ScalarTable{},
	})

	require.Len(t, results.Rows, 1)
	assert.Equal(t, 100.0, results.Summary.DemandCoveragePct)
	assert.Equal(t, 0, results.Summary.StockoutCount)
}

func TestCalculateAll_MissingAttributesDegrade(t *testing.T) {
	c := NewCalculator(nil, testNow)

	demand := NewWeeklyTable()
	demand.Set("A", "CW11-2025", 5)

	results := c.CalculateAll(Input{
		Demand:            demand,
		Inbound:           NewWeeklyTable(),
		SignedPO:          NewWeeklyTable(),
		UnsignedPO:        NewWeeklyTable(),
		StartingInventory: ScalarTable{},
		Prices:            ScalarTable{},
	})

	a := results.Rows["A"]
	require.NotNil(t, a)

	// No price, no marketplace, no lead-time attributes: everything defaults
	// instead of erroring.
	assert.True(t, a.RevenueMissYearEnd.IsZero())
	assert.Empty(t, a.TransferOrder)
	assert.Equal(t, 45, a.TransportLeadDays)
	assert.Equal(t, 45.0, a.ProductionLeadDays)
}
