package shape

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/leadtime"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// Shaper builds the forecast input tables from one warehouse snapshot. It
// carries the lead-time book and "now" so every date projection in one run
// uses the same reference time.
type Shaper struct {
	book *leadtime.Book
	now  time.Time

	// vendor id -> shipping region, built once per snapshot
	vendorRegion map[string]string
}

// NewShaper builds a shaper for one run. A nil book falls back to the
// built-in lookup tables.
func NewShaper(book *leadtime.Book, now time.Time) *Shaper {
	if book == nil {
		book = leadtime.Default()
	}
	return &Shaper{book: book, now: now}
}

// Build shapes a full snapshot into the engine's input tables.
func (s *Shaper) Build(snap *warehouse.Snapshot) forecast.Input {
	s.vendorRegion = buildVendorRegions(snap.Vendors)

	in := forecast.Input{
		Demand:            BuildDemand(snap.Demand),
		StartingInventory: BuildStartingInventory(snap.Inventory),
		Inbound:           s.BuildInbound(snap.Inbound),
		Prices:            BuildPrices(snap.Prices),
	}
	in.SignedPO, in.UnsignedPO = s.SplitOpenPO(snap.OpenPO)
	in.Attributes = s.BuildAttributes(snap)

	log.Info().
		Int("demand_refs", len(in.Demand)).
		Int("inventory_refs", len(in.StartingInventory)).
		Int("signed_po_refs", len(in.SignedPO)).
		Int("unsigned_po_refs", len(in.UnsignedPO)).
		Int("inbound_refs", len(in.Inbound)).
		Msg("snapshot shaped into forecast input")

	return in
}

// BuildPrices keys the benchmark sales prices by ref. Duplicate refs keep
// the higher price.
func BuildPrices(rows []warehouse.PriceRow) forecast.ScalarTable {
	prices := make(forecast.ScalarTable, len(rows))
	for _, row := range rows {
		if row.FinalSalesPrice > prices[row.Ref] {
			prices[row.Ref] = row.FinalSalesPrice
		}
	}
	return prices
}

func buildVendorRegions(rows []warehouse.VendorRow) map[string]string {
	regions := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.VendorID != "" && row.ShippingCountry != "" {
			regions[row.VendorID] = row.ShippingCountry
		}
	}
	return regions
}

// BuildAttributes joins master data, vendor regions, and pipeline positions
// into the per-ref attribute map. The entity universe comes from the demand
// plan, the broadest of the source tables; refs outside it simply get zero
// attributes downstream.
func (s *Shaper) BuildAttributes(snap *warehouse.Snapshot) map[string]forecast.Attributes {
	masterByItem := make(map[string]warehouse.MasterRow, len(snap.Master))
	for _, row := range snap.Master {
		masterByItem[row.ItemCode] = row
	}

	pipelineByRef := make(map[string]warehouse.PipelineRow, len(snap.Pipeline))
	for _, row := range snap.Pipeline {
		pipelineByRef[row.Ref] = row
	}

	attrs := make(map[string]forecast.Attributes)
	for _, row := range snap.Demand {
		ref := MakeRef(row.ASIN, row.ItemCode, row.Marketplace)
		if ref == "" {
			continue
		}
		if _, seen := attrs[ref]; seen {
			continue
		}

		a := forecast.Attributes{
			Marketplace: StandardizeMarketplace(row.Marketplace),
		}

		if master, ok := masterByItem[row.ItemCode]; ok {
			a.ProductionLeadDays = master.ProductionLeadDays.Float64
			a.UnitsPerCarton = master.UnitsPerCarton.Float64
			a.ShippingRegion = s.vendorRegion[vendorPrefix(master.PreferredVendor.String)]
		}
		if pipe, ok := pipelineByRef[ref]; ok {
			a.Pipeline = forecast.PipelineQuantities{
				ReadyToShip:          pipe.ReadyToShip,
				AtDestination:        pipe.AtDestination,
				InTransitShort:       pipe.InTransitShort,
				LocalMarket:          pipe.LocalMarket,
				InTransit35to98:      pipe.InTransit35to98,
				Manufacturing28to126: pipe.Manufacturing28to126,
				Manufacturing56to168: pipe.Manufacturing56to168,
			}
		}

		attrs[ref] = a
	}
	return attrs
}
