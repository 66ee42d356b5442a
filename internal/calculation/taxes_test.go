package calculation

import (
	"testing"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFederalTax(t *testing.T) {
	engine := NewEngine(testStore())

	tests := []struct {
		name            string
		grossIncome     decimal.Decimal
		status          domain.FilingStatus
		expectedTaxable decimal.Decimal
		expectedTax     decimal.Decimal
	}{
		{
			// 80400 taxable: 11600*0.10 + 35550*0.12 + 33250*0.22
			name:            "95k single spans three brackets",
			grossIncome:     decimal.NewFromInt(95000),
			status:          domain.FilingSingle,
			expectedTaxable: decimal.NewFromInt(80400),
			expectedTax:     decimal.NewFromInt(12741),
		},
		{
			name:            "zero income owes nothing",
			grossIncome:     decimal.Zero,
			status:          domain.FilingSingle,
			expectedTaxable: decimal.Zero,
			expectedTax:     decimal.Zero,
		},
		{
			name:            "income below standard deduction owes nothing",
			grossIncome:     decimal.NewFromInt(10000),
			status:          domain.FilingSingle,
			expectedTaxable: decimal.Zero,
			expectedTax:     decimal.Zero,
		},
		{
			// 30000*0.10 + 5800*0.12 stays exact at the bracket boundary
			name:            "joint filer in second bracket",
			grossIncome:     decimal.NewFromInt(59000),
			status:          domain.FilingMarriedJointly,
			expectedTaxable: decimal.NewFromInt(29800),
			expectedTax:     decimal.NewFromInt(3112),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateFederalTax(tt.grossIncome, tt.status)
			require.NoError(t, err)
			assert.True(t, result.TaxableIncome.Equal(tt.expectedTaxable),
				"taxable: expected %s, got %s", tt.expectedTaxable, result.TaxableIncome)
			assert.True(t, result.FederalTax.Equal(tt.expectedTax),
				"tax: expected %s, got %s", tt.expectedTax, result.FederalTax)
		})
	}
}

func TestCalculateFederalTaxBreakdownSumsToTotal(t *testing.T) {
	engine := NewEngine(testStore())

	result, err := engine.CalculateFederalTax(decimal.NewFromInt(250000), domain.FilingSingle)
	require.NoError(t, err)
	require.NotEmpty(t, result.BracketBreakdown)

	sum := decimal.Zero
	income := decimal.Zero
	for _, bracket := range result.BracketBreakdown {
		sum = sum.Add(bracket.Tax)
		income = income.Add(bracket.Income)
	}
	assert.True(t, sum.Equal(result.FederalTax), "breakdown taxes must sum to the total")
	assert.True(t, income.Equal(result.TaxableIncome), "breakdown incomes must sum to taxable income")
}

func TestCalculateFederalTaxMonotonicity(t *testing.T) {
	engine := NewEngine(testStore())

	prev := decimal.Zero
	for _, gross := range []int64{20000, 50000, 95000, 170000, 250000, 700000} {
		result, err := engine.CalculateFederalTax(decimal.NewFromInt(gross), domain.FilingSingle)
		require.NoError(t, err)
		assert.True(t, result.FederalTax.GreaterThanOrEqual(prev),
			"tax at %d must not decrease", gross)
		assert.True(t, result.FederalTax.LessThanOrEqual(result.GrossIncome),
			"tax at %d must not exceed gross income", gross)
		prev = result.FederalTax
	}
}

func TestCalculateFederalTaxInvalidInput(t *testing.T) {
	engine := NewEngine(testStore())

	_, err := engine.CalculateFederalTax(decimal.NewFromInt(-1), domain.FilingSingle)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.CalculateFederalTax(decimal.NewFromInt(50000), domain.FilingStatus("quadruple"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateStateTax(t *testing.T) {
	engine := NewEngine(testStore())
	gross := decimal.NewFromInt(95000)

	tests := []struct {
		name      string
		stateCode string
		expected  decimal.Decimal
	}{
		{"no-income-tax state", "TX", decimal.Zero},
		{"flat-rate state", "CO", decimal.NewFromInt(4180)},
		{"lowercase code accepted", "ca", decimal.RequireFromString("8835")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateStateTax(gross, tt.stateCode)
			require.NoError(t, err)
			assert.True(t, result.StateTax.Equal(tt.expected),
				"expected %s, got %s", tt.expected, result.StateTax)
		})
	}

	_, err := engine.CalculateStateTax(gross, "ZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateFICA(t *testing.T) {
	engine := NewEngine(testStore())

	t.Run("below wage base and surtax threshold", func(t *testing.T) {
		result, err := engine.CalculateFICA(decimal.NewFromInt(95000))
		require.NoError(t, err)
		assert.True(t, result.SocialSecurity.Equal(decimal.NewFromInt(5890)))
		assert.True(t, result.Medicare.Equal(decimal.RequireFromString("1377.5")))
	})

	t.Run("social security caps at the wage base", func(t *testing.T) {
		atBase, err := engine.CalculateFICA(decimal.NewFromInt(168600))
		require.NoError(t, err)
		tenTimes, err := engine.CalculateFICA(decimal.NewFromInt(1686000))
		require.NoError(t, err)
		assert.True(t, atBase.SocialSecurity.Equal(tenTimes.SocialSecurity),
			"social security above the wage base must equal the capped amount")
	})

	t.Run("additional medicare above 200k", func(t *testing.T) {
		// 250000*0.0145 + 50000*0.009
		result, err := engine.CalculateFICA(decimal.NewFromInt(250000))
		require.NoError(t, err)
		assert.True(t, result.Medicare.Equal(decimal.NewFromInt(4075)),
			"expected 4075, got %s", result.Medicare)
	})

	_, err := engine.CalculateFICA(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateTakeHome(t *testing.T) {
	engine := NewEngine(testStore())
	gross := decimal.NewFromInt(95000)

	result, err := engine.CalculateTakeHome(gross, domain.FilingSingle, "CA")
	require.NoError(t, err)

	assert.True(t, result.TakeHomeAnnual.Add(result.TotalTaxes).Equal(gross),
		"take-home plus taxes must reconstruct gross income exactly")
	assert.True(t, result.TakeHomeMonthly.Equal(result.TakeHomeAnnual.Div(decimal.NewFromInt(12))))
	assert.Equal(t, "California", result.State)
	assert.Equal(t, "CA", result.StateCode)

	// A no-income-tax state must net more at the same salary.
	texas, err := engine.CalculateTakeHome(gross, domain.FilingSingle, "TX")
	require.NoError(t, err)
	assert.True(t, texas.TakeHomeAnnual.GreaterThan(result.TakeHomeAnnual))
	assert.True(t, texas.StateTax.IsZero())
}

func TestCalculateTakeHomeZeroIncome(t *testing.T) {
	engine := NewEngine(testStore())

	result, err := engine.CalculateTakeHome(decimal.Zero, domain.FilingSingle, "TX")
	require.NoError(t, err)
	assert.True(t, result.TotalTaxes.IsZero())
	assert.True(t, result.OverallTaxRate.IsZero())
	assert.True(t, result.TakeHomeAnnual.IsZero())
}
