package shape

import (
	"time"

	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// BuildInbound projects every inbound shipment to its arrival week and
// accumulates the quantities per ref.
func (s *Shaper) BuildInbound(rows []warehouse.InboundRow) forecast.WeeklyTable {
	inbound := forecast.NewWeeklyTable()

	for _, row := range rows {
		ref := MakeRef(row.ASIN.String, row.ItemCode, row.Marketplace)
		if ref == "" || row.Quantity <= 0 {
			continue
		}
		inbound.Add(ref, forecast.WeekLabelFor(s.inboundArrival(row)), row.Quantity)
	}
	return inbound
}

// inboundArrival resolves a shipment's arrival date through the fallback
// chain, most reliable date first:
//
//  1. the carrier's expected delivery date, as is;
//  2. actual port arrival plus the channel buffer;
//  3. the movement date plus channel buffer and transport lead time;
//  4. the cargo-ready date plus channel buffer, transport, and 12 days of
//     handling slack;
//  5. none of the above: a flat horizon from today.
//
// A resolved date in the past is replaced by next week; the goods are
// clearly close but cannot arrive before now.
func (s *Shaper) inboundArrival(row warehouse.InboundRow) time.Time {
	mp := StandardizeMarketplace(row.Marketplace)
	region := s.vendorRegion[vendorPrefix(row.VendorName)]

	transport, ok := s.book.TransportDays(region, mp)
	if !ok {
		transport = s.book.Defaults.TransportDays
	}
	buffer := s.book.ChannelBufferDays(region, mp)

	var arrival time.Time
	switch {
	case row.ExpectedDeliveryDate.Valid:
		arrival = row.ExpectedDeliveryDate.Time
	case row.ActualArrivalDate.Valid:
		arrival = row.ActualArrivalDate.Time.AddDate(0, 0, buffer)
	case row.MovementDate.Valid:
		arrival = row.MovementDate.Time.AddDate(0, 0, buffer+transport)
	case row.FinalCRD.Valid:
		arrival = row.FinalCRD.Time.AddDate(0, 0, buffer+transport+12)
	default:
		arrival = s.now.AddDate(0, 0, s.book.Defaults.InboundFallbackDay)
	}

	if arrival.Before(s.now) {
		arrival = s.now.AddDate(0, 0, 7)
	}
	return arrival
}
