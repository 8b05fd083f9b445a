package forecast

import "github.com/shopspring/decimal"

// Forward-demand horizons, in weeks from the current ISO week.
var demandHorizons = []int{7, 10, 14, 18}

// futureDemand sums the entity's demand over the next n weeks.
func (c *Calculator) futureDemand(demand WeeklyTable, ref string, n int) float64 {
	return demand.Sum(ref, NextWeeks(c.now, n))
}

// recommend applies the transfer-order and expedite policy rules to one row.
// The thresholds encode business policy and are reproduced exactly; all
// pipeline attributes tolerate missing values by reading as zero.
func (c *Calculator) recommend(row *Row, attrs Attributes) {
	pipe := attrs.Pipeline

	// A transfer order is worth raising when the near-channel pipeline does
	// not cover forward demand (10 weeks for the US/CA fulfillment network,
	// 7 weeks for EU/UK) and at least a full carton is sitting in the local
	// market to transfer.
	nearSupply := pipe.NearChannelSupply()
	shortOfDemand := false
	switch attrs.Marketplace {
	case "US", "CA":
		shortOfDemand = nearSupply < row.FutureDemand10w
	case "EU", "UK":
		shortOfDemand = nearSupply < row.FutureDemand7w
	}
	if shortOfDemand && pipe.LocalMarket > attrs.UnitsPerCarton {
		row.TransferOrder = ActionTransferOrder
	}

	// Expedite when mid-horizon transit is short of 14-week demand and enough
	// supply exists upstream in manufacturing to justify pulling it forward.
	if pipe.InTransit35to98 < row.FutureDemand14w {
		if pipe.Manufacturing28to126 > row.FutureDemand18w {
			row.Expedite = ActionExpedite
		}
		if pipe.Manufacturing56to168 > pipe.InTransit35to98 {
			row.ProduceFaster = ActionProduceFaster
		}
	}

	// At-risk margin: the revenue value of the units a transfer could rescue,
	// capped by what is actually available locally, floored at zero.
	row.AtRiskMargin = decimal.Zero
	if row.TransferOrder != "" {
		rescuable := row.FutureDemand10w - nearSupply
		if pipe.LocalMarket < rescuable {
			rescuable = pipe.LocalMarket
		}
		if rescuable > 0 {
			row.AtRiskMargin = decimal.NewFromFloat(rescuable).
				Mul(decimal.NewFromFloat(row.FinalSalesPrice))
		}
	}
}
