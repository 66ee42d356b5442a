package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/jmwill86/reloconomics/internal/calculation"
	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/jmwill86/reloconomics/internal/forecast"
	"github.com/jmwill86/reloconomics/internal/output"
	"github.com/jmwill86/reloconomics/internal/refdata"
	"github.com/jmwill86/reloconomics/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reloconomics",
	Short: "Predictive cost of living comparison tool",
	Long: "Compare true purchasing power across U.S. metros based on estimated " +
		"take-home pay, cost-of-living indices and expense forecasts",
}

// loadStore loads the reference datasets or exits: the engines cannot
// produce a correct result without them.
func loadStore(cmd *cobra.Command) *refdata.Store {
	dir, _ := cmd.Flags().GetString("data")
	store, err := refdata.Load(dir)
	if err != nil {
		log.Fatal(err)
	}
	return store
}

func parseIncome(cmd *cobra.Command) decimal.Decimal {
	raw, _ := cmd.Flags().GetString("income")
	income, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid income %q: %v", raw, err)
	}
	return income
}

func parseStatus(cmd *cobra.Command) domain.FilingStatus {
	raw, _ := cmd.Flags().GetString("status")
	status, err := domain.ParseFilingStatus(raw)
	if err != nil {
		log.Fatal(err)
	}
	return status
}

// emit prints a result as JSON when --format json is set, otherwise runs
// the console writer.
func emit(cmd *cobra.Command, result any, console func()) {
	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		data, err := output.FormatJSON(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
		return
	}
	console()
}

var takeHomeCmd = &cobra.Command{
	Use:   "takehome",
	Short: "Estimate take-home pay after federal, state and FICA taxes",
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		engine := calculation.NewEngine(store)

		stateCode, _ := cmd.Flags().GetString("state")
		breakdown, err := engine.CalculateTakeHome(parseIncome(cmd), parseStatus(cmd), stateCode)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, breakdown, func() { output.WriteTakeHome(os.Stdout, breakdown) })
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [current-metro] [target-metro]",
	Short: "Compare take-home pay and cost of living between two metros",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		metroA, metroB := args[0], args[1]
		if metroA == metroB {
			log.Fatal("select two different metros to compare")
		}
		store := loadStore(cmd)
		engine := calculation.NewEngine(store)

		profileA, ok := store.Metro(metroA)
		if !ok {
			log.Fatalf("unknown metro %q (run 'reloconomics metros' for options)", metroA)
		}
		profileB, ok := store.Metro(metroB)
		if !ok {
			log.Fatalf("unknown metro %q (run 'reloconomics metros' for options)", metroB)
		}

		income := parseIncome(cmd)
		status := parseStatus(cmd)

		takeHomeA, err := engine.CalculateTakeHome(income, status, profileA.State)
		if err != nil {
			log.Fatal(err)
		}
		takeHomeB, err := engine.CalculateTakeHome(income, status, profileB.State)
		if err != nil {
			log.Fatal(err)
		}

		comparison, err := engine.CompareMetros(metroA, metroB)
		if err != nil {
			log.Fatal(err)
		}
		powerA, err := engine.CalculatePurchasingPower(takeHomeA.TakeHomeMonthly, metroA)
		if err != nil {
			log.Fatal(err)
		}
		powerB, err := engine.CalculatePurchasingPower(takeHomeB.TakeHomeMonthly, metroB)
		if err != nil {
			log.Fatal(err)
		}

		output.WriteTakeHome(os.Stdout, takeHomeA)
		fmt.Println()
		output.WriteTakeHome(os.Stdout, takeHomeB)
		fmt.Println()
		output.WriteComparison(os.Stdout, comparison)
		fmt.Println()
		output.WritePurchasingPower(os.Stdout, powerA)
		fmt.Println()
		output.WritePurchasingPower(os.Stdout, powerB)
		fmt.Println()

		diff := powerB.DiscretionaryIncome.Sub(powerA.DiscretionaryIncome)
		switch {
		case diff.IsPositive():
			fmt.Printf("BOTTOM LINE: %s leaves you with %s more per month in discretionary income.\n",
				metroB, output.FormatCurrency(diff))
		case diff.IsNegative():
			fmt.Printf("BOTTOM LINE: %s leaves you with %s more per month in discretionary income.\n",
				metroA, output.FormatCurrency(diff.Abs()))
		default:
			fmt.Println("BOTTOM LINE: both metros provide similar purchasing power at this salary.")
		}

		// State-level affordability is a broad signal on top of the metro
		// numbers; a missing RPP entry should not sink the comparison.
		if summary, err := engine.AffordabilitySummary(profileA.State, profileB.State); err == nil {
			fmt.Println()
			output.WriteAffordabilitySummary(os.Stdout, summary)
		}

		// Same policy for forecasts: one metro lacking history must not
		// prevent reporting the other's projection.
		forecaster := forecast.NewForecaster(store)
		for _, metro := range []string{metroA, metroB} {
			fmt.Println()
			result, err := forecaster.Forecast(metro, 6)
			if err != nil {
				fmt.Printf("Forecast unavailable for %s: %v\n", metro, err)
				continue
			}
			output.WriteForecast(os.Stdout, result)
		}
	},
}

var powerCmd = &cobra.Command{
	Use:   "power [metro]",
	Short: "Analyze purchasing power of a monthly take-home amount in a metro",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		engine := calculation.NewEngine(store)

		raw, _ := cmd.Flags().GetString("monthly")
		monthly, err := decimal.NewFromString(raw)
		if err != nil {
			log.Fatalf("invalid monthly amount %q: %v", raw, err)
		}
		power, err := engine.CalculatePurchasingPower(monthly, args[0])
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, power, func() { output.WritePurchasingPower(os.Stdout, power) })
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [metro]",
	Short: "Forecast monthly expenses with a per-category regression model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		forecaster := forecast.NewForecaster(store)

		months, _ := cmd.Flags().GetInt("months")
		result, err := forecaster.Forecast(args[0], months)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				log.Fatalf("%v (run 'reloconomics metros' for metros with historical data)", err)
			}
			log.Fatal(err)
		}
		emit(cmd, result, func() { output.WriteForecast(os.Stdout, result) })
	},
}

var forecastCompareCmd = &cobra.Command{
	Use:   "forecast-compare [metro-a] [metro-b]",
	Short: "Compare expense forecasts for two metros at multiple horizons",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		forecaster := forecast.NewForecaster(store)

		horizons, _ := cmd.Flags().GetIntSlice("horizons")
		comparison, err := forecaster.CompareForecasts(args[0], args[1], horizons)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, comparison, func() { output.WriteForecastComparison(os.Stdout, comparison) })
	},
}

var seasonalCmd = &cobra.Command{
	Use:   "seasonal [metro]",
	Short: "Show seasonal expense patterns for a metro",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		forecaster := forecast.NewForecaster(store)

		report, err := forecaster.SeasonalInsights(args[0])
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, report, func() { output.WriteSeasonalReport(os.Stdout, report) })
	},
}

var monthsCmd = &cobra.Command{
	Use:   "months [metro]",
	Short: "Rank a metro's cheapest and most expensive historical months",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		forecaster := forecast.NewForecaster(store)

		rankings, err := forecaster.BestWorstMonths(args[0])
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, rankings, func() { output.WriteMonthRankings(os.Stdout, rankings) })
	},
}

var affordabilityCmd = &cobra.Command{
	Use:   "affordability [base-state] [target-state]",
	Short: "Compare two states by BEA Regional Price Parity",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		engine := calculation.NewEngine(store)

		summary, err := engine.AffordabilitySummary(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, summary, func() { output.WriteAffordabilitySummary(os.Stdout, summary) })

		if table, _ := cmd.Flags().GetBool("table"); table {
			rows, err := engine.RelativeAffordability(args[0])
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println()
			output.WriteAffordabilityTable(os.Stdout, rows)
		}
	},
}

var metrosCmd = &cobra.Command{
	Use:   "metros",
	Short: "List metros with cost-of-living and forecast data",
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		forecastable := make(map[string]bool)
		for _, name := range store.ForecastMetros() {
			forecastable[name] = true
		}
		for _, name := range store.MetroNames() {
			marker := ""
			if forecastable[name] {
				marker = "  [forecast]"
			}
			fmt.Printf("%s%s\n", name, marker)
		}
	},
}

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states with their income tax rates",
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		for _, code := range store.StateCodes() {
			profile, _ := store.StateTax(code)
			fmt.Printf("%s  %-22s %6s%%  (%s)\n",
				code, profile.Name, profile.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2), profile.Type)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the reference datasets",
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		fmt.Printf("Reference data OK: %d filing statuses, %d states, %d metros, %d forecastable, %d RPP entries\n",
			len(store.Federal), len(store.StateTaxes), len(store.Metros), len(store.Historical), len(store.RPP))
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [current-metro] [target-metro]",
	Short: "Browse a two-metro comparison interactively",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := loadStore(cmd)
		if err := tui.Run(store, tui.Options{
			Income:       parseIncome(cmd),
			FilingStatus: parseStatus(cmd),
			MetroA:       args[0],
			MetroB:       args[1],
		}); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "reloconomics %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().String("data", "data", "Directory containing the reference datasets")

	for _, cmd := range []*cobra.Command{takeHomeCmd, compareCmd, tuiCmd} {
		cmd.Flags().String("income", "95000", "Annual gross income")
		cmd.Flags().String("status", "single", "Filing status (single, married_filing_jointly, married_filing_separately, head_of_household)")
	}
	takeHomeCmd.Flags().String("state", "", "Two-letter state code")
	_ = takeHomeCmd.MarkFlagRequired("state")

	powerCmd.Flags().String("monthly", "5000", "Monthly take-home amount")
	forecastCmd.Flags().Int("months", 6, "Months to forecast ahead")
	forecastCompareCmd.Flags().IntSlice("horizons", []int{3, 6, 12}, "Forecast horizons in months")
	affordabilityCmd.Flags().Bool("table", false, "Also print the full per-state table")

	for _, cmd := range []*cobra.Command{takeHomeCmd, powerCmd, forecastCmd, forecastCompareCmd, seasonalCmd, monthsCmd, affordabilityCmd} {
		cmd.Flags().String("format", "console", "Output format (console or json)")
	}

	rootCmd.AddCommand(takeHomeCmd, compareCmd, powerCmd, forecastCmd, forecastCompareCmd,
		seasonalCmd, monthsCmd, affordabilityCmd, metrosCmd, statesCmd, validateCmd, tuiCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
