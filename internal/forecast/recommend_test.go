package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecommend_TransferOrderUS(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{
		FinalSalesPrice: 2,
		FutureDemand10w: 50,
	}
	attrs := Attributes{
		Marketplace:    "US",
		UnitsPerCarton: 12,
		Pipeline: PipelineQuantities{
			ReadyToShip:   5,
			AtDestination: 5,
			LocalMarket:   30,
		},
	}

	c.recommend(row, attrs)

	assert.Equal(t, ActionTransferOrder, row.TransferOrder)
	// Rescuable units: min(50-10, 30) = 30, at price 2.
	assert.True(t, decimal.NewFromFloat(60).Equal(row.AtRiskMargin), "got %s", row.AtRiskMargin)
}

func TestRecommend_TransferOrderEUUsesSevenWeekHorizon(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{
		FutureDemand7w:  5,
		FutureDemand10w: 50,
	}
	attrs := Attributes{
		Marketplace:    "EU",
		UnitsPerCarton: 12,
		Pipeline: PipelineQuantities{
			ReadyToShip: 10,
			LocalMarket: 30,
		},
	}

	// Near supply of 10 covers the 7-week demand of 5; the 10-week shortfall
	// is irrelevant for EU.
	c.recommend(row, attrs)

	assert.Empty(t, row.TransferOrder)
	assert.True(t, row.AtRiskMargin.IsZero())
}

func TestRecommend_NoTransferBelowCartonSize(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{FutureDemand10w: 50}
	attrs := Attributes{
		Marketplace:    "CA",
		UnitsPerCarton: 24,
		Pipeline:       PipelineQuantities{LocalMarket: 20},
	}

	c.recommend(row, attrs)

	assert.Empty(t, row.TransferOrder)
}

func TestRecommend_UnknownMarketplaceNeverFlags(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{FutureDemand7w: 50, FutureDemand10w: 50}
	attrs := Attributes{
		Marketplace: "JP",
		Pipeline:    PipelineQuantities{LocalMarket: 100},
	}

	c.recommend(row, attrs)

	assert.Empty(t, row.TransferOrder)
}

func TestRecommend_ExpediteAndProduceFaster(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{
		FutureDemand14w: 20,
		FutureDemand18w: 25,
	}
	attrs := Attributes{
		Marketplace: "US",
		Pipeline: PipelineQuantities{
			InTransit35to98:      5,
			Manufacturing28to126: 30,
			Manufacturing56to168: 10,
		},
	}

	c.recommend(row, attrs)

	assert.Equal(t, ActionExpedite, row.Expedite)
	assert.Equal(t, ActionProduceFaster, row.ProduceFaster)
}

func TestRecommend_NoExpediteWhenTransitCoversDemand(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{
		FutureDemand14w: 20,
		FutureDemand18w: 25,
	}
	attrs := Attributes{
		Marketplace: "US",
		Pipeline: PipelineQuantities{
			InTransit35to98:      40,
			Manufacturing28to126: 100,
			Manufacturing56to168: 100,
		},
	}

	c.recommend(row, attrs)

	assert.Empty(t, row.Expedite)
	assert.Empty(t, row.ProduceFaster)
}

func TestFutureDemand_SumsForwardWeeks(t *testing.T) {
	c := NewCalculator(nil, testNow) // ISO week 10 of 2025

	demand := NewWeeklyTable()
	demand.Set("A", "CW10-2025", 3)
	demand.Set("A", "CW16-2025", 4)
	demand.Set("A", "CW17-2025", 100) // beyond the 7-week window

	assert.Equal(t, 7.0, c.futureDemand(demand, "A", 7))
	assert.Equal(t, 107.0, c.futureDemand(demand, "A", 10))
}
