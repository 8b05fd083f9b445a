package shape

import (
	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// Workflow stages past supplier sign-off. Quantities in these stages are
// firm commitments and count as coverage in the shortfall math.
var signedStages = map[string]struct{}{
	"12. Ready for Batching Pending":   {},
	"13. Batch Creation Pending":       {},
	"14. SM Sign-Off Pending":          {},
	"15. CI Approval Pending":          {},
	"16. CI Payment Pending":           {},
	"17. QC Schedule Pending":          {},
	"18. FFW Booking Missing":          {},
	"19. Supplier Pickup Date Pending": {},
	"20. Pre Pickup Check":             {},
	"21. FOB Pickup Pending":           {},
	"22. Non FOB Pickup Pending":       {},
	"23. INB Creation Pending":         {},
}

// Stages before sign-off plus the blocked buckets. These quantities may
// still change or be cancelled, so they only ever soften the projected
// inventory level.
var unsignedStages = map[string]struct{}{
	"01. PO Approval Pending":           {},
	"02. Supplier Confirmation Pending": {},
	"03. PI Upload Pending":             {},
	"04. PI Approval Pending":           {},
	"05. PI Payment Pending":            {},
	"06. Packaging Pending":             {},
	"07. Transperancy Label Pending":    {},
	"08. PRD Pending":                   {},
	"09. Under Production":              {},
	"10. PRD Confirmation Pending":      {},
	"11. IM Sign-Off Pending":           {},
	"A. Anti PO Line":                   {},
	"B. Compliance Blocked":             {},
}

// SplitOpenPO projects every open PO line to its expected arrival week and
// splits the quantities into signed and unsigned tables by workflow stage.
// Lines in a stage belonging to neither set are dropped.
func (s *Shaper) SplitOpenPO(rows []warehouse.OpenPORow) (signed, unsigned forecast.WeeklyTable) {
	signed = forecast.NewWeeklyTable()
	unsigned = forecast.NewWeeklyTable()

	for _, row := range rows {
		ref := MakeRef(row.ASIN.String, row.ItemCode, row.Marketplace)
		if ref == "" || row.LeftoverQuantity <= 0 {
			continue
		}

		week := s.expectedArrivalWeek(row)

		if _, ok := signedStages[row.Stage]; ok {
			signed.Add(ref, week, row.LeftoverQuantity)
		} else if _, ok := unsignedStages[row.Stage]; ok {
			unsigned.Add(ref, week, row.LeftoverQuantity)
		}
	}
	return signed, unsigned
}

// expectedArrivalWeek projects a PO line's arrival: requested cargo-ready
// date (floored at today) plus the route's transport lead time plus the
// port buffer for the destination warehouse type.
func (s *Shaper) expectedArrivalWeek(row warehouse.OpenPORow) forecast.WeekLabel {
	mp := StandardizeMarketplace(row.Marketplace)
	region := s.vendorRegion[vendorPrefix(row.VendorName)]

	transport, ok := s.book.TransportDays(region, mp)
	if !ok {
		transport = s.book.Defaults.ArrivalDays
	}
	portBuffer, ok := s.book.PortBufferDays(row.WarehouseType, mp)
	if !ok {
		portBuffer = s.book.Defaults.PortBufferDays
	}

	crd := s.now
	if row.CRD.Valid && row.CRD.Time.After(s.now) {
		crd = row.CRD.Time
	}

	arrival := crd.AddDate(0, 0, transport+portBuffer)
	return forecast.WeekLabelFor(arrival)
}
