package leadtime

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// RouteKey identifies a shipping lane from a vendor region to a marketplace.
type RouteKey struct {
	ShippingRegion string
	Marketplace    string
}

// PortKey identifies a port-to-port buffer by warehouse type and location.
type PortKey struct {
	WarehouseType string
	Location      string
}

// Defaults enumerates every fallback the calculators substitute on a lookup
// miss. They are collected here so no call site carries its own magic number.
type Defaults struct {
	TransportDays      int // unknown (region, marketplace) route
	ArrivalDays        int // unknown route when projecting PO arrival weeks
	PortBufferDays     int // unknown (warehouse type, location) pair
	ChannelBufferDays  int // unknown marketplace in the channel buffer map
	ProductionDays     int // entity without a production lead time
	ProcessingDays     int // fixed PO processing time
	SafetyDays         int // fixed safety buffer
	InboundFallbackDay int // inbound shipment with no usable date at all
}

// Book is the read-only lookup table set shared by the shaping and lead-time
// calculators. It is built once at startup and passed by reference.
type Book struct {
	transport     map[RouteKey]int
	portBuffer    map[PortKey]int
	channelBuffer map[string]int

	Defaults Defaults
}

// TransportDays returns the ocean transport lead time for a route.
func (b *Book) TransportDays(shippingRegion, marketplace string) (int, bool) {
	d, ok := b.transport[RouteKey{ShippingRegion: shippingRegion, Marketplace: marketplace}]
	return d, ok
}

// PortBufferDays returns the port-to-port buffer for a warehouse type at a location.
func (b *Book) PortBufferDays(warehouseType, location string) (int, bool) {
	d, ok := b.portBuffer[PortKey{WarehouseType: warehouseType, Location: location}]
	return d, ok
}

// ChannelBufferDays returns the port-to-channel buffer for goods arriving in
// a marketplace. Goods already produced in the destination region need no
// channel buffer.
func (b *Book) ChannelBufferDays(shippingRegion, marketplace string) int {
	if marketplace != "" && marketplace == shippingRegion {
		return 0
	}
	if d, ok := b.channelBuffer[marketplace]; ok {
		return d
	}
	return b.Defaults.ChannelBufferDays
}

// Default returns a Book carrying only the built-in tables. Used when the
// lookup directory is unavailable and in tests.
func Default() *Book {
	return &Book{
		transport:     defaultTransport(),
		portBuffer:    defaultPortBuffers(),
		channelBuffer: defaultChannelBuffers(),
		Defaults:      defaultDefaults(),
	}
}

// Load reads the lookup CSVs from dir, creating them with the built-in
// defaults when missing. A malformed file degrades to the built-in table for
// that concern rather than failing the run.
func Load(dir string) (*Book, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure lookup dir %s: %w", dir, err)
	}

	book := Default()

	transportPath := filepath.Join(dir, "transport_leadtimes.csv")
	if rows, err := loadOrSeedCSV(transportPath, []string{"shipping_region", "arrival_region", "leadtime_days"}, transportSeedRows()); err != nil {
		log.Warn().Err(err).Str("path", transportPath).Msg("using built-in transport lead times")
	} else {
		m := make(map[RouteKey]int, len(rows))
		for _, r := range rows {
			m[RouteKey{ShippingRegion: r[0], Marketplace: r[1]}] = atoiOr(r[2], book.Defaults.TransportDays)
		}
		book.transport = m
	}

	portPath := filepath.Join(dir, "port_buffers.csv")
	if rows, err := loadOrSeedCSV(portPath, []string{"wh_type", "location", "buffer_days"}, portBufferSeedRows()); err != nil {
		log.Warn().Err(err).Str("path", portPath).Msg("using built-in port buffers")
	} else {
		m := make(map[PortKey]int, len(rows))
		for _, r := range rows {
			m[PortKey{WarehouseType: r[0], Location: r[1]}] = atoiOr(r[2], book.Defaults.PortBufferDays)
		}
		book.portBuffer = m
	}

	return book, nil
}

func loadOrSeedCSV(path string, header []string, seed [][]string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeCSV(path, header, seed); err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Msg("created default lookup table")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("lookup table %s is empty", path)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(header) {
			continue
		}
		clean := make([]string, len(header))
		for i := range header {
			clean[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, clean)
	}
	return rows, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
