package warehouse

import (
	"database/sql"
	"time"
)

// DemandRow is one (item, marketplace, month) cell of the validated demand
// plan snapshot. Quantities are monthly and get distributed to weeks by the
// shaping layer.
type DemandRow struct {
	Marketplace string    `db:"mp"`
	ItemCode    string    `db:"razin"`
	ASIN        string    `db:"asin"`
	MonthDate   time.Time `db:"date"`
	Quantity    float64   `db:"quantity"`
}

// InventoryRow is the current sellable position of one listing, with the
// buckets that must be netted out of the raw total.
type InventoryRow struct {
	Marketplace       string  `db:"marketplace"`
	ASIN              string  `db:"asin"`
	TotalInventory    float64 `db:"total_inventory"`
	InWalmart         float64 `db:"in_walmart"`
	InTransferL3M     float64 `db:"in_to_osc_l3m"`
	InFirstMile       float64 `db:"in_fm"`
	InDirectToChannel float64 `db:"units_in_d2amz"`
}

// OpenPORow is one open purchase order line with its workflow stage and the
// inputs needed to project its arrival week.
type OpenPORow struct {
	PONumber         string         `db:"po_number"`
	LineID           string         `db:"line_id"`
	ItemCode         string         `db:"razin"`
	ASIN             sql.NullString `db:"asin"`
	Marketplace      string         `db:"mp"`
	VendorName       string         `db:"vendor_name"`
	Stage            string         `db:"current_status"`
	WarehouseType    string         `db:"wh_type"`
	CRD              sql.NullTime   `db:"crd"`
	LeftoverQuantity float64        `db:"leftover_quantity"`
}

// InboundRow is one shipment already on its way, with every date the arrival
// fallback chain can draw on.
type InboundRow struct {
	ItemCode             string         `db:"razin"`
	ASIN                 sql.NullString `db:"asin"`
	Marketplace          string         `db:"mkt_place"`
	VendorName           string         `db:"vendor_name"`
	Quantity             float64        `db:"quantity"`
	ExpectedDeliveryDate sql.NullTime   `db:"expected_delivery_date"`
	ActualArrivalDate    sql.NullTime   `db:"actual_arrival_date"`
	MovementDate         sql.NullTime   `db:"movement_date"`
	FinalCRD             sql.NullTime   `db:"final_crd"`
}

// PriceRow carries the benchmark sales price already keyed by ref.
type PriceRow struct {
	Ref             string  `db:"ref"`
	FinalSalesPrice float64 `db:"final_sales_price"`
}

// MasterRow is the per-item master data consumed by the recommendation and
// lead-time calculators.
type MasterRow struct {
	ItemCode           string          `db:"razin"`
	ASIN               sql.NullString  `db:"asin"`
	ProductionLeadDays sql.NullFloat64 `db:"lead_time_production_days"`
	UnitsPerCarton     sql.NullFloat64 `db:"units_per_carton"`
	PreferredVendor    sql.NullString  `db:"preferred_vendor"`
}

// VendorRow maps a vendor to its shipping country, the source of each
// line's shipping region.
type VendorRow struct {
	VendorID        string `db:"vendor_id"`
	VendorName      string `db:"vendor_name"`
	ShippingCountry string `db:"shipping_country"`
}

// PipelineRow is the bucketed fulfillment-pipeline position of one listing,
// keyed by ref.
type PipelineRow struct {
	Ref                  string  `db:"ref"`
	ReadyToShip          float64 `db:"ready_to_ship"`
	AtDestination        float64 `db:"at_destination"`
	InTransitShort       float64 `db:"in_transit_short"`
	LocalMarket          float64 `db:"local_market"`
	InTransit35to98      float64 `db:"in_transit_35_98"`
	Manufacturing28to126 float64 `db:"manufacturing_28_126"`
	Manufacturing56to168 float64 `db:"manufacturing_56_168"`
}

// Snapshot is one consistent extraction of every source table a forecast
// run consumes.
type Snapshot struct {
	Demand    []DemandRow
	Inventory []InventoryRow
	OpenPO    []OpenPORow
	Inbound   []InboundRow
	Prices    []PriceRow
	Master    []MasterRow
	Vendors   []VendorRow
	Pipeline  []PipelineRow
}
