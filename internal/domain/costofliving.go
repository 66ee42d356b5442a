package domain

import "github.com/shopspring/decimal"

// ExpenseCategories lists the five tracked cost-of-living categories in
// canonical order. Every breakdown and forecast covers exactly these.
var ExpenseCategories = []string{
	"housing",
	"food",
	"transportation",
	"healthcare",
	"utilities",
}

// ExpenseBreakdown holds estimated monthly expenses for one metro.
type ExpenseBreakdown struct {
	Metro        string                     `json:"metro"`
	Categories   map[string]decimal.Decimal `json:"categories"`
	Total        decimal.Decimal            `json:"total"`
	OverallIndex decimal.Decimal            `json:"overallIndex"`
}

// CategoryDiff is the dollar and percent change for one category when
// moving from metro A to metro B.
type CategoryDiff struct {
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// MetroComparison is a side-by-side cost comparison of two metros.
// Differences are keyed by category plus "total" and read B minus A.
type MetroComparison struct {
	MetroA      ExpenseBreakdown        `json:"metroA"`
	MetroB      ExpenseBreakdown        `json:"metroB"`
	Differences map[string]CategoryDiff `json:"differences"`
}

// PurchasingPower measures discretionary income after estimated expenses.
// DiscretionaryIncome may be negative; a deficit is a valid result.
type PurchasingPower struct {
	TakeHomeMonthly     decimal.Decimal  `json:"takeHomeMonthly"`
	TotalExpenses       decimal.Decimal  `json:"totalExpenses"`
	DiscretionaryIncome decimal.Decimal  `json:"discretionaryIncome"`
	ExpenseRatio        decimal.Decimal  `json:"expenseRatio"` // percent of take-home
	Breakdown           ExpenseBreakdown `json:"breakdown"`
}
