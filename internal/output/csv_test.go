package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylens/supplylens/internal/forecast"
)

func testResults() *forecast.Results {
	return &forecast.Results{
		Weeks: []forecast.WeekLabel{"CW10-2025", "CW11-2025"},
		Waterfall: &forecast.WaterfallResult{
			Weeks: []forecast.WeekLabel{"CW10-2025", "CW11-2025"},
			Ledgers: map[string]*forecast.Ledger{
				"B01US": {
					SalesMissed:   map[forecast.WeekLabel]float64{"CW10-2025": 30},
					FirstStockout: "CW10-2025",
				},
				"A02EU": {
					SalesMissed:    map[forecast.WeekLabel]float64{"CW11-2025": 5},
					FirstStockout:  "CW11-2025",
					LastTransition: "CW11-2025",
				},
			},
		},
		Rows: map[string]*forecast.Row{
			"B01US": {
				Ref:                "B01US",
				Marketplace:        "US",
				FinalSalesPrice:    2.5,
				FirstStockoutWeek:  "CW10-2025",
				FinalStockoutWeek:  "CW10-2025",
				StockoutObserved:   true,
				RevenueMissYearEnd: decimal.NewFromInt(75),
				TransferOrder:      forecast.ActionTransferOrder,
			},
			"A02EU": {Ref: "A02EU", Marketplace: "EU"},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteFinalTable(t *testing.T) {
	dir := t.TempDir()
	runDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	path, err := WriteFinalTable(dir, testResults(), runDate)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "final_table_20250305.csv"), path)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, finalColumns, records[0])

	// Rows come out in ref order.
	assert.Equal(t, "A02EU", records[1][0])
	assert.Equal(t, "B01US", records[2][0])

	row := records[2]
	assert.Equal(t, "US", row[1])
	assert.Equal(t, "2.5", row[3])
	assert.Equal(t, "CW10-2025", row[4])
	assert.Equal(t, "true", row[7])
	assert.Equal(t, "75.00", row[8])
	assert.Equal(t, forecast.ActionTransferOrder, row[15])
}

func TestWriteSalesMissed(t *testing.T) {
	dir := t.TempDir()
	runDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	path, err := WriteSalesMissed(dir, testResults(), runDate)
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{
		"ref", "CW10-2025", "CW11-2025",
		"first_stockout_week", "last_stockout_transition_week", "final_stockout_week",
	}, records[0])
	assert.Equal(t, []string{"A02EU", "0", "5", "CW11-2025", "CW11-2025", "CW11-2025"}, records[1])
	assert.Equal(t, []string{"B01US", "30", "0", "CW10-2025", "", "CW10-2025"}, records[2])
}
