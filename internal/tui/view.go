package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/jmwill86/reloconomics/internal/output"
	"github.com/jmwill86/reloconomics/internal/tui/components"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Reloconomics: %s vs %s", m.opts.MetroA, m.opts.MetroB)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	var pane string
	switch m.active {
	case tabSummary:
		pane = m.viewSummary()
	case tabExpenses:
		pane = m.expenseTable.View()
	case tabForecast:
		pane = m.viewForecast()
	case tabSeasonal:
		pane = m.viewSeasonal()
	case tabAffordability:
		pane = m.viewAffordability()
	}
	b.WriteString(paneStyle.Render(pane))
	b.WriteString(helpStyle.Render("\ntab/←→ switch  1-5 jump  q quit"))
	return appStyle.Render(b.String())
}

func (m *Model) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewSummary() string {
	left := m.renderTakeHomeCard(m.takeHomeA, m.powerA)
	right := m.renderTakeHomeCard(m.takeHomeB, m.powerB)
	cards := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)

	diff := m.powerB.DiscretionaryIncome.Sub(m.powerA.DiscretionaryIncome)
	var verdict string
	switch {
	case diff.IsPositive():
		verdict = positiveStyle.Render(fmt.Sprintf("%s leaves %s more discretionary income per month",
			m.opts.MetroB, output.FormatCurrency(diff)))
	case diff.IsNegative():
		verdict = negativeStyle.Render(fmt.Sprintf("%s leaves %s more discretionary income per month",
			m.opts.MetroA, output.FormatCurrency(diff.Abs())))
	default:
		verdict = mutedStyle.Render("both metros provide similar purchasing power")
	}
	return cards + "\n\n" + verdict
}

func (m *Model) renderTakeHomeCard(t *domain.TakeHomeBreakdown, p *domain.PurchasingPower) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(p.Breakdown.Metro))
	fmt.Fprintf(&b, "State:          %s (%s)\n", t.State, t.StateCode)
	fmt.Fprintf(&b, "Take-Home/yr:   %s\n", output.FormatCurrency(t.TakeHomeAnnual))
	fmt.Fprintf(&b, "Take-Home/mo:   %s\n", output.FormatCurrency(t.TakeHomeMonthly))
	fmt.Fprintf(&b, "Expenses/mo:    %s\n", output.FormatCurrency(p.TotalExpenses))
	disc := output.FormatCurrency(p.DiscretionaryIncome)
	fmt.Fprintf(&b, "Discretionary:  %s\n", signedStyle(p.DiscretionaryIncome.IsNegative()).Render(disc))
	fmt.Fprintf(&b, "Expense ratio:  %s", output.FormatPercentage(p.ExpenseRatio))
	return b.String()
}

func (m *Model) viewForecast() string {
	if m.forecastA == nil && m.forecastB == nil {
		return mutedStyle.Render(m.forecastErrA + "\n" + m.forecastErrB)
	}

	chart := components.NewLineChart("Monthly expense totals, history and 6-month projection")
	var labels []string
	if m.forecastA != nil {
		points := append(append([]float64{}, m.forecastA.HistoricalTotals...), m.forecastA.ForecastTotals...)
		chart.AddSeries(m.opts.MetroA, points, colorSeriesA)
		labels = append(append([]string{}, m.forecastA.HistoricalDates...), m.forecastA.ForecastDates...)
	}
	if m.forecastB != nil {
		points := append(append([]float64{}, m.forecastB.HistoricalTotals...), m.forecastB.ForecastTotals...)
		chart.AddSeries(m.opts.MetroB, points, colorSeriesB)
		if labels == nil {
			labels = append(append([]string{}, m.forecastB.HistoricalDates...), m.forecastB.ForecastDates...)
		}
	}
	view := chart.WithLabels(labels).Render()

	if m.forecastErrA != "" {
		view += "\n" + mutedStyle.Render(m.forecastErrA)
	}
	if m.forecastErrB != "" {
		view += "\n" + mutedStyle.Render(m.forecastErrB)
	}
	return view
}

func (m *Model) viewSeasonal() string {
	var b strings.Builder
	for _, report := range []*domain.SeasonalReport{m.seasonalA, m.seasonalB} {
		if report == nil {
			continue
		}
		b.WriteString(titleStyle.Render(report.Metro))
		b.WriteString("\n")
		shown := 0
		for _, category := range domain.ExpenseCategories {
			insight, ok := report.Insights[category]
			if !ok || insight.SeasonalVariance <= 3 {
				continue
			}
			shown++
			fmt.Fprintf(&b, "  %-16s peaks %s (%s), lowest %s (%s), %.0f%% swing\n",
				category, insight.PeakMonth, output.FormatDollars(insight.PeakValue),
				insight.LowMonth, output.FormatDollars(insight.LowValue), insight.SeasonalVariance)
		}
		if shown == 0 {
			b.WriteString(mutedStyle.Render("  no category swings more than 3%"))
			b.WriteString("\n")
		}
		if note, ok := report.SeasonalNotes[report.Metro]; ok {
			b.WriteString(mutedStyle.Render("  " + note))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return mutedStyle.Render("no seasonal data for either metro")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewAffordability() string {
	if m.affordability == nil {
		return mutedStyle.Render(m.affordabilityErr)
	}
	s := m.affordability
	direction := "more expensive"
	style := negativeStyle
	if s.IsCheaper {
		direction = "cheaper"
		style = positiveStyle
	}
	return fmt.Sprintf("%s (RPP %s) vs %s (RPP %s)\n\n%s\n\nHousing costs differ by %s%%",
		s.BaseName, s.BaseRPP.StringFixed(1), s.TargetName, s.TargetRPP.StringFixed(1),
		style.Render(fmt.Sprintf("%s is %s%% %s overall than %s",
			s.TargetName, s.OverallDiffPercent.Abs().StringFixed(1), direction, s.BaseName)),
		s.HousingDiffPercent.StringFixed(1))
}
