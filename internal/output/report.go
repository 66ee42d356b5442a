package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmwill86/reloconomics/internal/domain"
)

// Console report writers for the engine result types. These are the only
// place where results are turned into text; the engines stay free of
// formatting concerns.

// FormatJSON serializes any result as pretty-printed JSON.
func FormatJSON(result any) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// WriteTakeHome writes a take-home pay breakdown.
func WriteTakeHome(w io.Writer, b *domain.TakeHomeBreakdown) {
	fmt.Fprintln(w, "TAKE-HOME PAY ESTIMATE")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Gross Income:          %s\n", FormatCurrency(b.GrossIncome))
	fmt.Fprintf(w, "Filing Status:         %s\n", b.FilingStatus.Label())
	fmt.Fprintf(w, "State:                 %s (%s)\n", b.State, b.StateCode)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Standard Deduction:    %s\n", FormatCurrency(b.StandardDeduction))
	fmt.Fprintf(w, "Taxable Income:        %s\n", FormatCurrency(b.TaxableIncome))
	fmt.Fprintf(w, "Federal Tax:           %s (effective %s)\n", FormatCurrency(b.FederalTax), FormatPercentage(b.FederalEffectiveRate))
	fmt.Fprintf(w, "State Tax:             %s (rate %s)\n", FormatCurrency(b.StateTax), FormatPercentage(b.StateRate))
	fmt.Fprintf(w, "Social Security:       %s\n", FormatCurrency(b.SocialSecurity))
	fmt.Fprintf(w, "Medicare:              %s\n", FormatCurrency(b.Medicare))
	fmt.Fprintf(w, "Total Taxes:           %s (overall %s)\n", FormatCurrency(b.TotalTaxes), FormatPercentage(b.OverallTaxRate))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Take-Home (annual):    %s\n", FormatCurrency(b.TakeHomeAnnual))
	fmt.Fprintf(w, "Take-Home (monthly):   %s\n", FormatCurrency(b.TakeHomeMonthly))
}

// WriteComparison writes a two-metro expense comparison table.
func WriteComparison(w io.Writer, c *domain.MetroComparison) {
	fmt.Fprintln(w, "MONTHLY EXPENSE COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "%-16s %13s %13s %13s %9s\n", "Category", c.MetroA.Metro, c.MetroB.Metro, "Diff", "Pct")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, category := range domain.ExpenseCategories {
		diff := c.Differences[category]
		fmt.Fprintf(w, "%-16s %13s %13s %13s %8s%%\n",
			titleCase(category),
			FormatCurrency(c.MetroA.Categories[category]),
			FormatCurrency(c.MetroB.Categories[category]),
			FormatSignedCurrency(diff.Amount),
			diff.Percent.StringFixed(1))
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	total := c.Differences["total"]
	fmt.Fprintf(w, "%-16s %13s %13s %13s %8s%%\n",
		"Total",
		FormatCurrency(c.MetroA.Total),
		FormatCurrency(c.MetroB.Total),
		FormatSignedCurrency(total.Amount),
		total.Percent.StringFixed(1))
}

// WritePurchasingPower writes a discretionary income analysis.
func WritePurchasingPower(w io.Writer, p *domain.PurchasingPower) {
	fmt.Fprintf(w, "PURCHASING POWER: %s\n", p.Breakdown.Metro)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Take-Home (monthly):   %s\n", FormatCurrency(p.TakeHomeMonthly))
	fmt.Fprintf(w, "Estimated Expenses:    %s\n", FormatCurrency(p.TotalExpenses))
	fmt.Fprintf(w, "Discretionary Income:  %s\n", FormatCurrency(p.DiscretionaryIncome))
	fmt.Fprintf(w, "Expense Ratio:         %s\n", FormatPercentage(p.ExpenseRatio))
	if p.DiscretionaryIncome.IsNegative() {
		fmt.Fprintln(w, "WARNING: estimated expenses exceed take-home pay in this metro")
	}
}

// WriteForecast writes a forecast summary with per-category model quality.
func WriteForecast(w io.Writer, f *domain.ForecastResult) {
	fmt.Fprintf(w, "EXPENSE FORECAST: %s\n", f.Metro)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Model: %s on features %s\n", f.ModelType, strings.Join(f.Features, ", "))
	fmt.Fprintf(w, "History: %s .. %s (%d months)\n",
		f.HistoricalDates[0], f.HistoricalDates[len(f.HistoricalDates)-1], len(f.HistoricalDates))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-9s", "Month")
	for _, category := range domain.ExpenseCategories {
		fmt.Fprintf(w, " %10s", titleCase(category))
	}
	fmt.Fprintf(w, " %10s\n", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 9+11*(len(domain.ExpenseCategories)+1)))
	for i, date := range f.ForecastDates {
		fmt.Fprintf(w, "%-9s", date)
		for _, category := range domain.ExpenseCategories {
			fmt.Fprintf(w, " %10s", FormatDollars(f.ForecastByCategory[category][i]))
		}
		fmt.Fprintf(w, " %10s\n", FormatDollars(f.ForecastTotals[i]))
	}
	fmt.Fprintln(w)

	lastActual := f.HistoricalTotals[len(f.HistoricalTotals)-1]
	lastForecast := f.ForecastTotals[len(f.ForecastTotals)-1]
	fmt.Fprintf(w, "Projected monthly total for %s: %s (%s vs latest actual)\n",
		f.ForecastDates[len(f.ForecastDates)-1], FormatDollars(lastForecast), FormatSignedDollars(lastForecast-lastActual))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Model quality (holdout validation):")
	for _, category := range domain.ExpenseCategories {
		m := f.Metrics[category]
		fmt.Fprintf(w, "  %-16s MAE %8.2f   R2 %7.4f\n", titleCase(category), m.MAE, m.RSquared)
	}
}

// WriteSeasonalReport writes seasonal insights, suppressing categories
// whose swing is within noise (3% or less).
func WriteSeasonalReport(w io.Writer, r *domain.SeasonalReport) {
	fmt.Fprintf(w, "SEASONAL PATTERNS: %s\n", r.Metro)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	shown := 0
	for _, category := range domain.ExpenseCategories {
		insight, ok := r.Insights[category]
		if !ok || insight.SeasonalVariance <= 3 {
			continue
		}
		shown++
		fmt.Fprintf(w, "%-16s peaks in %s (%s), lowest in %s (%s) - %.0f%% swing\n",
			titleCase(category), insight.PeakMonth, FormatDollars(insight.PeakValue),
			insight.LowMonth, FormatDollars(insight.LowValue), insight.SeasonalVariance)
	}
	if shown == 0 {
		fmt.Fprintln(w, "No category shows a seasonal swing above 3%.")
	}
	if note, ok := r.SeasonalNotes[r.Metro]; ok {
		fmt.Fprintf(w, "Note: %s\n", note)
	}
}

// WriteMonthRankings writes the cheapest and most expensive months.
func WriteMonthRankings(w io.Writer, r *domain.MonthRankings) {
	fmt.Fprintf(w, "CHEAPEST AND MOST EXPENSIVE MONTHS: %s\n", r.Metro)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Cheapest:")
	for _, obs := range r.Cheapest {
		fmt.Fprintf(w, "  %s  %s\n", obs.Date, FormatDollars(obs.Total))
	}
	fmt.Fprintln(w, "Most expensive:")
	for _, obs := range r.Expensive {
		fmt.Fprintf(w, "  %s  %s\n", obs.Date, FormatDollars(obs.Total))
	}
	fmt.Fprintf(w, "Annual low:  %s (%s)\n", r.AnnualLow.Date, FormatDollars(r.AnnualLow.Total))
	fmt.Fprintf(w, "Annual high: %s (%s)\n", r.AnnualHigh.Date, FormatDollars(r.AnnualHigh.Total))
}

// WriteAffordabilitySummary writes a two-state RPP comparison.
func WriteAffordabilitySummary(w io.Writer, s *domain.AffordabilitySummary) {
	fmt.Fprintln(w, "STATE AFFORDABILITY")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "%s (RPP %s) vs %s (RPP %s)\n",
		s.BaseName, s.BaseRPP.StringFixed(1), s.TargetName, s.TargetRPP.StringFixed(1))
	direction := "more expensive"
	if s.IsCheaper {
		direction = "cheaper"
	}
	fmt.Fprintf(w, "%s is %s%% %s overall than %s (housing: %s%%)\n",
		s.TargetName, s.OverallDiffPercent.Abs().StringFixed(1), direction, s.BaseName,
		s.HousingDiffPercent.StringFixed(1))
}

// WriteAffordabilityTable writes the full relative-affordability table.
func WriteAffordabilityTable(w io.Writer, rows []domain.StateAffordability) {
	fmt.Fprintf(w, "%-6s %-22s %8s %8s %10s\n", "State", "Name", "RPP", "Housing", "vs Base")
	fmt.Fprintln(w, strings.Repeat("-", 58))
	for _, row := range rows {
		marker := ""
		if row.IsBase {
			marker = "  (base)"
		}
		fmt.Fprintf(w, "%-6s %-22s %8s %8s %9s%%%s\n",
			row.StateCode, row.StateName, row.RPP.StringFixed(1), row.HousingRPP.StringFixed(1),
			row.RelativeDiff.StringFixed(1), marker)
	}
}

// WriteForecastComparison writes per-horizon forecast differences.
func WriteForecastComparison(w io.Writer, c *domain.ForecastComparison) {
	fmt.Fprintf(w, "FORECAST COMPARISON: %s vs %s\n", c.MetroA, c.MetroB)
	fmt.Fprintln(w, strings.Repeat("=", 66))
	for _, horizon := range c.Horizons {
		fmt.Fprintf(w, "%d months ahead (%s):\n", horizon.MonthsAhead, horizon.Date)
		for _, category := range append(append([]string{}, domain.ExpenseCategories...), "total") {
			diff := horizon.Categories[category]
			fmt.Fprintf(w, "  %-16s %10s vs %10s  %10s (%.1f%%)\n",
				titleCase(category), FormatDollars(diff.ValueA), FormatDollars(diff.ValueB),
				FormatSignedDollars(diff.Diff), diff.DiffPct)
		}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
