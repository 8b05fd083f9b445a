package forecast

import "github.com/shopspring/decimal"

// Recommendation strings attached to the final table. An empty string means
// no action.
const (
	ActionTransferOrder = "TO to be checked/created"
	ActionExpedite      = "Expedite pick up goods from vendor"
	ActionProduceFaster = "Prepone PRD to produce faster"
)

// PipelineQuantities are the current fulfillment-pipeline positions for one
// entity, bucketed by how far the units are from being sellable. Missing
// buckets read as zero.
type PipelineQuantities struct {
	ReadyToShip          float64 // fulfillable within ~7 days
	AtDestination        float64 // at the destination warehouse, ~21 days out
	InTransitShort       float64 // on the way to the channel, ~35 days out
	LocalMarket          float64 // sitting in the local market, ~49 days out
	InTransit35to98      float64 // ocean transit, 35-98 day window
	Manufacturing28to126 float64 // upstream manufacturing, 28-126 day window
	Manufacturing56to168 float64 // upstream manufacturing, 56-168 day window
}

// NearChannelSupply is the short-term pipeline total compared against forward
// demand by the transfer-order rule.
func (p PipelineQuantities) NearChannelSupply() float64 {
	return p.ReadyToShip + p.AtDestination + p.InTransitShort
}

// Attributes are the per-entity scalar attributes consumed downstream of the
// simulation. Refs absent from the attribute map get the zero value, which
// downstream calculators treat as "attribute unknown".
type Attributes struct {
	Marketplace        string
	ShippingRegion     string
	UnitsPerCarton     float64
	ProductionLeadDays float64 // <= 0 means unknown; defaulted by the lead-time calculator
	Pipeline           PipelineQuantities
}

// Row is one entity of the final output table.
type Row struct {
	Ref            string
	Marketplace    string
	ShippingRegion string

	FinalSalesPrice float64

	FirstStockoutWeek  WeekLabel
	LastTransitionWeek WeekLabel
	FinalStockoutWeek  WeekLabel
	StockoutObserved   bool

	RevenueMissYearEnd      decimal.Decimal
	RevenueMissFromStockout decimal.Decimal
	DaysOnHand              int

	FutureDemand7w  float64
	FutureDemand10w float64
	FutureDemand14w float64
	FutureDemand18w float64

	TransferOrder string
	Expedite      string
	ProduceFaster string
	AtRiskMargin  decimal.Decimal

	TransportLeadDays  int
	ChannelBufferDays  int
	ProductionLeadDays float64
	TotalLeadDays      float64
}

// Summary holds the run-level scalars handed to the persistence layer.
type Summary struct {
	Entities          int     `json:"entities"`
	Weeks             int     `json:"weeks"`
	DemandCoveragePct float64 `json:"demand_coverage_pct"`
	StockoutCount     int     `json:"stockout_count"`
}

// Results is the full output of one forecast run.
type Results struct {
	Weeks     []WeekLabel
	Waterfall *WaterfallResult
	Rows      map[string]*Row
	Summary   Summary
}
