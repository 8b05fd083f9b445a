// Package shape turns raw warehouse extractions into the aligned weekly
// tables and per-entity attributes the forecast engine consumes: ref
// construction, marketplace standardization, monthly-to-weekly demand
// distribution, the signed/unsigned open PO split, and inbound arrival-week
// resolution.
package shape

import "strings"

// StandardizeMarketplace collapses reporting aliases onto the canonical
// marketplace codes used as ref suffixes and lookup keys.
func StandardizeMarketplace(mp string) string {
	switch strings.TrimSpace(mp) {
	case "Pan-EU", "DE":
		return "EU"
	case "GB":
		return "UK"
	case "North America":
		return "US"
	default:
		return strings.TrimSpace(mp)
	}
}

// MakeRef builds the entity key: the listing identifier (ASIN when present,
// internal item code otherwise) concatenated with the marketplace.
func MakeRef(asin, itemCode, mp string) string {
	id := strings.TrimSpace(asin)
	if id == "" {
		id = strings.TrimSpace(itemCode)
	}
	return id + StandardizeMarketplace(mp)
}

// vendorPrefix is the join key between order lines and the vendor master:
// the first five characters of the vendor name match the vendor id.
func vendorPrefix(vendorName string) string {
	name := strings.TrimSpace(vendorName)
	if len(name) > 5 {
		return name[:5]
	}
	return name
}
