// Package output persists forecast results: CSV files under the output
// directory, optionally published to S3-compatible object storage.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/forecast"
)

// finalColumns is the fixed column order of the final table. Downstream
// sheets key on these headers; do not reorder.
var finalColumns = []string{
	"ref",
	"marketplace",
	"shipping_region",
	"final_sales_price",
	"first_stockout_week",
	"last_stockout_transition_week",
	"final_stockout_week",
	"stockout_observed",
	"revenue_miss_year_end",
	"revenue_miss_from_stockout",
	"days_on_hand",
	"future_demand_7w",
	"future_demand_10w",
	"future_demand_14w",
	"future_demand_18w",
	"transfer_order",
	"expedite",
	"produce_faster",
	"at_risk_margin",
	"transport_lead_days",
	"channel_buffer_days",
	"production_lead_days",
	"total_lead_days",
}

// WriteFinalTable writes the per-entity output rows, one file per run date.
func WriteFinalTable(dir string, results *forecast.Results, runDate time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("final_table_%s.csv", runDate.Format("20060102")))

	records := make([][]string, 0, len(results.Rows))
	for _, ref := range sortedRefs(results.Rows) {
		row := results.Rows[ref]
		records = append(records, []string{
			row.Ref,
			row.Marketplace,
			row.ShippingRegion,
			formatFloat(row.FinalSalesPrice),
			string(row.FirstStockoutWeek),
			string(row.LastTransitionWeek),
			string(row.FinalStockoutWeek),
			strconv.FormatBool(row.StockoutObserved),
			row.RevenueMissYearEnd.StringFixed(2),
			row.RevenueMissFromStockout.StringFixed(2),
			strconv.Itoa(row.DaysOnHand),
			formatFloat(row.FutureDemand7w),
			formatFloat(row.FutureDemand10w),
			formatFloat(row.FutureDemand14w),
			formatFloat(row.FutureDemand18w),
			row.TransferOrder,
			row.Expedite,
			row.ProduceFaster,
			row.AtRiskMargin.StringFixed(2),
			strconv.Itoa(row.TransportLeadDays),
			strconv.Itoa(row.ChannelBufferDays),
			formatFloat(row.ProductionLeadDays),
			formatFloat(row.TotalLeadDays),
		})
	}

	if err := writeCSV(path, finalColumns, records); err != nil {
		return "", err
	}
	log.Info().Str("path", path).Int("rows", len(records)).Msg("final table written")
	return path, nil
}

// WriteSalesMissed writes the weekly shortfall matrix: one row per entity,
// one column per simulated week, followed by the stockout marker columns.
func WriteSalesMissed(dir string, results *forecast.Results, runDate time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("sales_missed_%s.csv", runDate.Format("20060102")))

	header := make([]string, 0, len(results.Weeks)+4)
	header = append(header, "ref")
	for _, w := range results.Weeks {
		header = append(header, string(w))
	}
	header = append(header,
		"first_stockout_week",
		"last_stockout_transition_week",
		"final_stockout_week",
	)

	records := make([][]string, 0, len(results.Waterfall.Ledgers))
	refs := make([]string, 0, len(results.Waterfall.Ledgers))
	for ref := range results.Waterfall.Ledgers {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	for _, ref := range refs {
		ledger := results.Waterfall.Ledgers[ref]
		record := make([]string, 0, len(header))
		record = append(record, ref)
		for _, w := range results.Weeks {
			record = append(record, formatFloat(ledger.SalesMissed[w]))
		}
		record = append(record,
			string(ledger.FirstStockout),
			string(ledger.LastTransition),
			string(ledger.FinalStockout()),
		)
		records = append(records, record)
	}

	if err := writeCSV(path, header, records); err != nil {
		return "", err
	}
	log.Info().Str("path", path).Int("rows", len(records)).Msg("sales missed table written")
	return path, nil
}

func writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed writing header to %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed writing rows to %s: %w", path, err)
	}
	return nil
}

func sortedRefs(rows map[string]*forecast.Row) []string {
	refs := make([]string, 0, len(rows))
	for ref := range rows {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
