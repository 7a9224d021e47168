package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(report *ValuationReport) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func outputTable(report *ValuationReport) error {
	sym := currencySymbol(report.Currency)

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  🏠 PROPERTY VALUATION                        ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Borough:               %-37s ║\n", truncate(report.Input.Borough, 37))
	fmt.Printf("║  Property Type:         %-37s ║\n", truncate(report.Input.PropertyType, 37))
	fmt.Printf("║  Floor Area:            %-37s ║\n", fmt.Sprintf("%.0f m²", report.Input.FloorArea))
	fmt.Printf("║  Rooms:                 %-37s ║\n", fmt.Sprintf("%.0f", report.Input.Rooms))
	fmt.Printf("║  New Build:             %-37s ║\n", yesNo(report.Input.NewBuild))
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Estimated Price:       %s%-36s ║\n", sym, report.Price)
	if report.RangeLow != "" {
		rangeStr := fmt.Sprintf("%s%s – %s%s", sym, report.RangeLow, sym, report.RangeHigh)
		fmt.Printf("║  Likely Range:          %-37s ║\n", rangeStr)
	}

	if len(report.Breakdown) > 0 {
		fmt.Println("╠══════════════════════════════════════════════════════════════╣")
		fmt.Println("║  PRICE BREAKDOWN                                             ║")
		fmt.Println("╠══════════════════════════════════════════════════════════════╣")
		fmt.Printf("║  %-40s  %s%-15s ║\n", "Base price", sym, report.BasePrice)
		for _, line := range report.Breakdown {
			fmt.Printf("║  %-40s  ×%-15.2f ║\n", truncate(line.Label, 40), line.Multiplier)
		}
	}

	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Printf("  model: %s  valuation: %s\n", report.Model, report.ID)
	return nil
}

func outputMarkdown(report *ValuationReport) error {
	sym := currencySymbol(report.Currency)

	fmt.Println("## 🏠 Property Valuation")
	fmt.Println()
	fmt.Println("| Field | Value |")
	fmt.Println("|-------|-------|")
	fmt.Printf("| **Borough** | %s |\n", report.Input.Borough)
	fmt.Printf("| **Property Type** | %s |\n", report.Input.PropertyType)
	fmt.Printf("| **Floor Area** | %.0f m² |\n", report.Input.FloorArea)
	fmt.Printf("| **Rooms** | %.0f |\n", report.Input.Rooms)
	fmt.Printf("| **New Build** | %s |\n", yesNo(report.Input.NewBuild))
	fmt.Printf("| **Estimated Price** | %s%s |\n", sym, report.Price)
	if report.RangeLow != "" {
		fmt.Printf("| **Likely Range** | %s%s – %s%s |\n", sym, report.RangeLow, sym, report.RangeHigh)
	}

	if len(report.Breakdown) > 0 {
		fmt.Println()
		fmt.Println("### 📊 Price Breakdown")
		fmt.Println()
		fmt.Println("| Factor | Multiplier |")
		fmt.Println("|--------|------------|")
		fmt.Printf("| Base price | %s%s |\n", sym, report.BasePrice)
		for _, line := range report.Breakdown {
			fmt.Printf("| %s | ×%.2f |\n", line.Label, line.Multiplier)
		}
	}

	fmt.Println()
	fmt.Printf("_Model %s, valuation %s. Always consult professional valuers for actual property decisions._\n",
		report.Model, report.ID)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
