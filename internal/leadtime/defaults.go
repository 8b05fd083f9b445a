package leadtime

import "strconv"

func defaultDefaults() Defaults {
	return Defaults{
		TransportDays:      45,
		ArrivalDays:        39,
		PortBufferDays:     39,
		ChannelBufferDays:  39,
		ProductionDays:     45,
		ProcessingDays:     15,
		SafetyDays:         30,
		InboundFallbackDay: 55,
	}
}

func defaultChannelBuffers() map[string]int {
	return map[string]int{
		"US": 39, "CO": 39, "MX": 39, "CA": 39,
		"UK": 39, "BR": 36, "EU": 40, "Other": 39,
	}
}

type routeDays struct {
	from, to string
	days     int
}

func defaultTransport() map[RouteKey]int {
	routes := []routeDays{
		{"CN", "US", 39}, {"CN", "EU", 42}, {"CN", "UK", 34}, {"CN", "Asia", 23},
		{"IN", "US", 45}, {"IN", "EU", 33}, {"IN", "UK", 26}, {"EU", "US", 40},
		{"UK", "US", 36}, {"US", "UK", 52}, {"US", "EU", 20}, {"CN", "MX", 39},
		{"CN", "CO", 39}, {"CN", "BR", 39}, {"CN", "CA", 39}, {"US", "MX", 15},
		{"US", "CO", 15}, {"US", "BR", 15}, {"US", "CA", 15}, {"EU", "MX", 40},
		{"EU", "CO", 40}, {"EU", "BR", 40}, {"EU", "CA", 40}, {"MX", "CN", 20},
		{"MX", "UK", 15}, {"CO", "MX", 15}, {"BR", "MX", 15}, {"BR", "CO", 15},
		{"BR", "EU", 15}, {"BR", "IN", 15}, {"UK", "CA", 15}, {"UK", "JP", 15},
		{"AU", "Other", 15}, {"Other", "AU", 15}, {"EU", "JP", 10}, {"CO", "EU", 39},
		{"CN", "CN", 39}, {"US", "CN", 39}, {"BR", "BR", 15}, {"MX", "BR", 15},
		{"EU", "UK", 40}, {"US", "US", 7}, {"EU", "EU", 7}, {"CA", "CA", 2},
		{"CA", "US", 2}, {"CA", "UK", 15}, {"CA", "EU", 40}, {"CA", "BR", 40},
		{"CA", "MX", 40}, {"IN", "CA", 45}, {"IN", "CO", 15}, {"IN", "BR", 15},
		{"IN", "MX", 40}, {"MX", "MX", 15}, {"CO", "CO", 7}, {"UK", "UK", 2},
		{"BR", "US", 15}, {"BR", "CA", 15}, {"CO", "US", 15}, {"CO", "CA", 39},
		{"MX", "US", 40}, {"MX", "CA", 40}, {"MX", "CO", 15}, {"AU", "CN", 15},
		{"EU", "AU", 7}, {"MX", "AU", 7}, {"UK", "AU", 2}, {"CO", "JP", 2},
		{"CN", "JP", 20}, {"BR", "JP", 15}, {"IN", "JP", 15}, {"IN", "Asia", 23},
		{"JP", "US", 39}, {"CA", "CO", 20}, {"UK", "EU", 7},
	}

	m := make(map[RouteKey]int, len(routes))
	for _, r := range routes {
		m[RouteKey{ShippingRegion: r.from, Marketplace: r.to}] = r.days
	}
	return m
}

func transportSeedRows() [][]string {
	rows := make([][]string, 0)
	for key, days := range defaultTransport() {
		rows = append(rows, []string{key.ShippingRegion, key.Marketplace, strconv.Itoa(days)})
	}
	return rows
}

type portDays struct {
	whType, location string
	days             int
}

func defaultPortBuffers() map[PortKey]int {
	pairs := []portDays{
		{"3PL", "US", 39}, {"3PL", "CO", 39}, {"3PL", "MX", 39},
		{"FBA", "US", 25}, {"3PL", "BR", 39}, {"3PL", "EU", 40},
		{"FBA", "EU", 26}, {"3PL", "CA", 39}, {"FBA", "UK", 22},
		{"3PL", "UK", 39}, {"3PL", "Other", 39}, {"FBA", "CA", 25},
	}

	m := make(map[PortKey]int, len(pairs))
	for _, p := range pairs {
		m[PortKey{WarehouseType: p.whType, Location: p.location}] = p.days
	}
	return m
}

func portBufferSeedRows() [][]string {
	rows := make([][]string, 0)
	for key, days := range defaultPortBuffers() {
		rows = append(rows, []string{key.WarehouseType, key.Location, strconv.Itoa(days)})
	}
	return rows
}
