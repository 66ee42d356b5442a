package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmwill86/reloconomics/internal/calculation"
	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/jmwill86/reloconomics/internal/forecast"
	"github.com/jmwill86/reloconomics/internal/output"
	"github.com/jmwill86/reloconomics/internal/refdata"
	"github.com/shopspring/decimal"
)

// Options selects the scenario the TUI explores.
type Options struct {
	Income       decimal.Decimal
	FilingStatus domain.FilingStatus
	MetroA       string
	MetroB       string
}

type tab int

const (
	tabSummary tab = iota
	tabExpenses
	tabForecast
	tabSeasonal
	tabAffordability
	tabCount
)

var tabNames = []string{"Summary", "Expenses", "Forecast", "Seasonal", "Affordability"}

// Model holds everything the views render. All results are computed once
// up front; the scenario does not change while the program runs.
type Model struct {
	opts   Options
	active tab
	width  int
	height int

	takeHomeA  *domain.TakeHomeBreakdown
	takeHomeB  *domain.TakeHomeBreakdown
	comparison *domain.MetroComparison
	powerA     *domain.PurchasingPower
	powerB     *domain.PurchasingPower

	forecastA    *domain.ForecastResult
	forecastB    *domain.ForecastResult
	forecastErrA string
	forecastErrB string

	seasonalA *domain.SeasonalReport
	seasonalB *domain.SeasonalReport

	affordability    *domain.AffordabilitySummary
	affordabilityErr string

	expenseTable table.Model
}

// Run computes the two-metro scenario and starts the interactive program.
func Run(store *refdata.Store, opts Options) error {
	model, err := newModel(store, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newModel(store *refdata.Store, opts Options) (*Model, error) {
	engine := calculation.NewEngine(store)
	forecaster := forecast.NewForecaster(store)

	profileA, ok := store.Metro(opts.MetroA)
	if !ok {
		return nil, fmt.Errorf("%w: unknown metro %q", domain.ErrNotFound, opts.MetroA)
	}
	profileB, ok := store.Metro(opts.MetroB)
	if !ok {
		return nil, fmt.Errorf("%w: unknown metro %q", domain.ErrNotFound, opts.MetroB)
	}

	m := &Model{opts: opts}

	var err error
	if m.takeHomeA, err = engine.CalculateTakeHome(opts.Income, opts.FilingStatus, profileA.State); err != nil {
		return nil, err
	}
	if m.takeHomeB, err = engine.CalculateTakeHome(opts.Income, opts.FilingStatus, profileB.State); err != nil {
		return nil, err
	}
	if m.comparison, err = engine.CompareMetros(opts.MetroA, opts.MetroB); err != nil {
		return nil, err
	}
	if m.powerA, err = engine.CalculatePurchasingPower(m.takeHomeA.TakeHomeMonthly, opts.MetroA); err != nil {
		return nil, err
	}
	if m.powerB, err = engine.CalculatePurchasingPower(m.takeHomeB.TakeHomeMonthly, opts.MetroB); err != nil {
		return nil, err
	}

	// Forecasts and affordability are optional extras in this view; a
	// metro without history still gets the tax and expense tabs.
	if m.forecastA, err = forecaster.Forecast(opts.MetroA, 6); err != nil {
		m.forecastErrA = err.Error()
	}
	if m.forecastB, err = forecaster.Forecast(opts.MetroB, 6); err != nil {
		m.forecastErrB = err.Error()
	}
	m.seasonalA, _ = forecaster.SeasonalInsights(opts.MetroA)
	m.seasonalB, _ = forecaster.SeasonalInsights(opts.MetroB)
	if m.affordability, err = engine.AffordabilitySummary(profileA.State, profileB.State); err != nil {
		m.affordabilityErr = err.Error()
	}

	m.expenseTable = newExpenseTable(m.comparison)
	return m, nil
}

func newExpenseTable(c *domain.MetroComparison) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 16},
		{Title: c.MetroA.Metro, Width: 14},
		{Title: c.MetroB.Metro, Width: 14},
		{Title: "Diff", Width: 12},
		{Title: "Pct", Width: 8},
	}

	rows := make([]table.Row, 0, len(domain.ExpenseCategories)+1)
	for _, category := range domain.ExpenseCategories {
		diff := c.Differences[category]
		rows = append(rows, table.Row{
			category,
			output.FormatCurrency(c.MetroA.Categories[category]),
			output.FormatCurrency(c.MetroB.Categories[category]),
			output.FormatSignedCurrency(diff.Amount),
			diff.Percent.StringFixed(1) + "%",
		})
	}
	total := c.Differences["total"]
	rows = append(rows, table.Row{
		"total",
		output.FormatCurrency(c.MetroA.Total),
		output.FormatCurrency(c.MetroB.Total),
		output.FormatSignedCurrency(total.Amount),
		total.Percent.StringFixed(1) + "%",
	})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorPrimary)
	styles.Selected = styles.Selected.Foreground(colorSeriesB)
	t.SetStyles(styles)
	return t
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }
