package calculation

import (
	"testing"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateExpenses(t *testing.T) {
	engine := NewEngine(testStore())

	// Every index in Testville is 150, so each category is 1.5x the
	// national average: housing 1800 -> 2700 and so on.
	result, err := engine.CalculateExpenses("Testville, TX")
	require.NoError(t, err)

	assert.True(t, result.Categories["housing"].Equal(decimal.NewFromInt(2700)),
		"expected 2700, got %s", result.Categories["housing"])
	assert.True(t, result.Categories["food"].Equal(decimal.NewFromInt(900)))
	assert.True(t, result.Categories["utilities"].Equal(decimal.NewFromInt(450)))

	expectedTotal := decimal.Zero
	for _, category := range domain.ExpenseCategories {
		expectedTotal = expectedTotal.Add(result.Categories[category])
	}
	assert.True(t, result.Total.Equal(expectedTotal), "total must equal the category sum")
}

func TestCalculateExpensesUnknownMetro(t *testing.T) {
	engine := NewEngine(testStore())

	_, err := engine.CalculateExpenses("Atlantis, GA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompareMetros(t *testing.T) {
	engine := NewEngine(testStore())

	result, err := engine.CompareMetros("Austin, TX", "San Francisco, CA")
	require.NoError(t, err)

	// SF indexes above Austin in every category, so all diffs point up.
	for _, category := range domain.ExpenseCategories {
		diff := result.Differences[category]
		assert.True(t, diff.Amount.IsPositive(), "%s diff should be positive", category)
		assert.True(t, diff.Amount.Equal(result.MetroB.Categories[category].Sub(result.MetroA.Categories[category])),
			"%s diff must read B minus A", category)
	}

	total := result.Differences["total"]
	assert.True(t, total.Amount.Equal(result.MetroB.Total.Sub(result.MetroA.Total)))

	// Swapping the metros negates the dollar differences.
	reversed, err := engine.CompareMetros("San Francisco, CA", "Austin, TX")
	require.NoError(t, err)
	assert.True(t, reversed.Differences["total"].Amount.Equal(total.Amount.Neg()))
}

func TestCompareMetrosUnknownMetro(t *testing.T) {
	engine := NewEngine(testStore())

	_, err := engine.CompareMetros("Austin, TX", "Atlantis, GA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculatePurchasingPower(t *testing.T) {
	engine := NewEngine(testStore())

	t.Run("surplus", func(t *testing.T) {
		result, err := engine.CalculatePurchasingPower(decimal.NewFromInt(6000), "Austin, TX")
		require.NoError(t, err)
		assert.True(t, result.DiscretionaryIncome.Equal(decimal.NewFromInt(6000).Sub(result.TotalExpenses)))
		assert.True(t, result.DiscretionaryIncome.IsPositive())
		assert.True(t, result.ExpenseRatio.IsPositive())
	})

	t.Run("deficit is a valid result", func(t *testing.T) {
		result, err := engine.CalculatePurchasingPower(decimal.NewFromInt(2000), "San Francisco, CA")
		require.NoError(t, err)
		assert.True(t, result.DiscretionaryIncome.IsNegative())
	})

	t.Run("zero take-home yields zero ratio", func(t *testing.T) {
		result, err := engine.CalculatePurchasingPower(decimal.Zero, "Austin, TX")
		require.NoError(t, err)
		assert.True(t, result.ExpenseRatio.IsZero())
	})
}
