package calculation

import (
	"fmt"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateExpenses estimates monthly expenses for a metro by scaling the
// national-average baseline by the metro's per-category index
// (100 = national average).
func (e *Engine) CalculateExpenses(metro string) (*domain.ExpenseBreakdown, error) {
	profile, ok := e.Data.Metro(metro)
	if !ok {
		return nil, fmt.Errorf("%w: metro %q", domain.ErrNotFound, metro)
	}

	categories := make(map[string]decimal.Decimal, len(domain.ExpenseCategories))
	total := decimal.Zero
	for _, category := range domain.ExpenseCategories {
		amount := e.Data.NationalAverage[category].Mul(profile.Index(category)).Div(hundred)
		categories[category] = amount.Round(2)
		total = total.Add(amount)
	}

	return &domain.ExpenseBreakdown{
		Metro:        metro,
		Categories:   categories,
		Total:        total.Round(2),
		OverallIndex: profile.OverallIndex,
	}, nil
}

// CompareMetros produces a side-by-side expense comparison of two metros
// with per-category and total differences, read B minus A.
func (e *Engine) CompareMetros(metroA, metroB string) (*domain.MetroComparison, error) {
	expensesA, err := e.CalculateExpenses(metroA)
	if err != nil {
		return nil, err
	}
	expensesB, err := e.CalculateExpenses(metroB)
	if err != nil {
		return nil, err
	}

	differences := make(map[string]domain.CategoryDiff, len(domain.ExpenseCategories)+1)
	for _, category := range domain.ExpenseCategories {
		differences[category] = diffOf(expensesA.Categories[category], expensesB.Categories[category])
	}
	differences["total"] = diffOf(expensesA.Total, expensesB.Total)

	return &domain.MetroComparison{
		MetroA:      *expensesA,
		MetroB:      *expensesB,
		Differences: differences,
	}, nil
}

func diffOf(a, b decimal.Decimal) domain.CategoryDiff {
	amount := b.Sub(a)
	return domain.CategoryDiff{
		Amount:  amount,
		Percent: percentOf(amount, a).Round(1),
	}
}

// CalculatePurchasingPower measures how far a monthly take-home amount
// stretches in a metro. A negative discretionary income is a valid
// result, not an error: it means the metro runs a deficit at that pay.
func (e *Engine) CalculatePurchasingPower(takeHomeMonthly decimal.Decimal, metro string) (*domain.PurchasingPower, error) {
	expenses, err := e.CalculateExpenses(metro)
	if err != nil {
		return nil, err
	}

	return &domain.PurchasingPower{
		TakeHomeMonthly:     takeHomeMonthly,
		TotalExpenses:       expenses.Total,
		DiscretionaryIncome: takeHomeMonthly.Sub(expenses.Total),
		ExpenseRatio:        percentOf(expenses.Total, takeHomeMonthly).Round(1),
		Breakdown:           *expenses,
	}, nil
}
