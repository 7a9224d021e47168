package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeprice/internal/estimator"
	"homeprice/internal/model"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0.2))
	assert.Equal(t, "950", formatAmount(950))
	assert.Equal(t, "263,500", formatAmount(263500.4))
	assert.Equal(t, "1,250,000", formatAmount(1249999.6))
	assert.Equal(t, "-12,000", formatAmount(-12000))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "£", currencySymbol("GBP"))
	assert.Equal(t, "$", currencySymbol("USD"))
	assert.Equal(t, "CHF ", currencySymbol("CHF"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long borough name", 10))
}

// TestNewReport_RangeAndBreakdown verifies the report wires the
// estimator output through to display fields.
func TestNewReport_RangeAndBreakdown(t *testing.T) {
	bundle, err := model.Builtin("london-2025")
	require.NoError(t, err)
	est, err := estimator.New(bundle)
	require.NoError(t, err)

	in := estimator.Input{Borough: "Hackney", PropertyType: "Flat", FloorArea: 75, Rooms: 4}
	result, err := est.Estimate(in)
	require.NoError(t, err)
	breakdown, err := est.Breakdown(in)
	require.NoError(t, err)

	report := newReport(est, in, result, breakdown, false)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "london-2025", report.Model)
	assert.Equal(t, "GBP", report.Currency)
	assert.NotEmpty(t, report.RangeLow)
	assert.NotEmpty(t, report.RangeHigh)
	assert.Len(t, report.Breakdown, 6)
	assert.Equal(t, "Borough (Hackney)", report.Breakdown[0].Label)

	// --no-range drops the band but keeps the point estimate.
	noRange := newReport(est, in, result, nil, true)
	assert.Empty(t, noRange.RangeLow)
	assert.NotEmpty(t, noRange.Price)
}
