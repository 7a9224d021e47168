package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"homeprice/internal/estimator"
)

// ValuationReport is the presentation-layer view of an estimate: the
// pure estimator output plus an audit identity and formatted amounts.
type ValuationReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
	Currency    string    `json:"currency"`

	Input estimator.Input `json:"input"`

	Price    string  `json:"price"`
	RawPrice float64 `json:"raw_price"`

	RangeLow  string `json:"range_low,omitempty"`
	RangeHigh string `json:"range_high,omitempty"`

	Breakdown []BreakdownLine `json:"breakdown,omitempty"`
	BasePrice string          `json:"base_price,omitempty"`
}

// BreakdownLine is one multiplicative factor for display.
type BreakdownLine struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

func newReport(est *estimator.Estimator, in estimator.Input, result *estimator.Estimate, breakdown *estimator.Breakdown, noRange bool) *ValuationReport {
	report := &ValuationReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Model:       est.ModelName(),
		Currency:    est.Currency(),
		Input:       in,
		Price:       formatAmount(result.Price),
		RawPrice:    result.Price,
	}

	if result.HasRange && !noRange {
		report.RangeLow = formatAmount(result.Low)
		report.RangeHigh = formatAmount(result.High)
	}

	if breakdown != nil {
		report.BasePrice = formatAmount(breakdown.BasePrice)
		for _, f := range breakdown.Factors {
			report.Breakdown = append(report.Breakdown, BreakdownLine{
				Label:      factorLabel(f.Name, in),
				Multiplier: f.Multiplier,
			})
		}
	}

	return report
}

func factorLabel(name string, in estimator.Input) string {
	switch name {
	case "borough":
		return fmt.Sprintf("Borough (%s)", in.Borough)
	case "property_type":
		return fmt.Sprintf("Property type (%s)", in.PropertyType)
	case "new_build":
		if in.NewBuild {
			return "New build"
		}
		return "New build (no)"
	case "sale_year":
		return "Sale year projection"
	case "floor_area":
		return fmt.Sprintf("Floor area (%.0f m²)", in.FloorArea)
	case "rooms":
		return fmt.Sprintf("Rooms (%.0f)", in.Rooms)
	default:
		return name
	}
}

// formatAmount renders a price with thousands separators and no pence.
func formatAmount(price float64) string {
	whole := decimal.NewFromFloat(price).Round(0).StringFixed(0)

	neg := false
	if len(whole) > 0 && whole[0] == '-' {
		neg = true
		whole = whole[1:]
	}

	var out []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func currencySymbol(code string) string {
	switch code {
	case "GBP":
		return "£"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	default:
		return code + " "
	}
}
