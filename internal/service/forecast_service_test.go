package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplylens/supplylens/internal/forecast"
)

func serviceWithResults(t *testing.T, results *forecast.Results) *ForecastService {
	t.Helper()
	svc := NewForecastService(nil, nil, nil, nil, t.TempDir())
	svc.last = results
	return svc
}

func TestSummary_NoRunYet(t *testing.T) {
	svc := NewForecastService(nil, nil, nil, nil, t.TempDir())

	_, ok, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummary_FromLastRun(t *testing.T) {
	svc := serviceWithResults(t, &forecast.Results{
		Summary: forecast.Summary{Entities: 3, DemandCoveragePct: 92.5},
	})

	summary, ok, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, summary.Entities)
	assert.Equal(t, 92.5, summary.DemandCoveragePct)
}

func TestRefDetail(t *testing.T) {
	results := &forecast.Results{
		Rows: map[string]*forecast.Row{
			"B01US": {Ref: "B01US", Marketplace: "US"},
		},
		Waterfall: &forecast.WaterfallResult{
			Ledgers: map[string]*forecast.Ledger{
				"B01US": {SalesMissed: map[forecast.WeekLabel]float64{"CW10-2025": 4}},
			},
		},
	}
	svc := serviceWithResults(t, results)

	row, missed, ok := svc.RefDetail("B01US")
	require.True(t, ok)
	assert.Equal(t, "US", row.Marketplace)
	assert.Equal(t, 4.0, missed["CW10-2025"])

	_, _, ok = svc.RefDetail("NOPE")
	assert.False(t, ok)
}
