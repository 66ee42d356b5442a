package calculation

import (
	"testing"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffordabilitySummary(t *testing.T) {
	engine := NewEngine(testStore())

	// (96.5 - 112.6) / 112.6 * 100 = -14.3
	summary, err := engine.AffordabilitySummary("CA", "TX")
	require.NoError(t, err)
	assert.Equal(t, "California", summary.BaseName)
	assert.Equal(t, "Texas", summary.TargetName)
	assert.True(t, summary.OverallDiffPercent.Equal(decimal.RequireFromString("-14.3")),
		"expected -14.3, got %s", summary.OverallDiffPercent)
	assert.True(t, summary.IsCheaper)

	// The reverse comparison points the other way.
	reverse, err := engine.AffordabilitySummary("TX", "CA")
	require.NoError(t, err)
	assert.False(t, reverse.IsCheaper)
	assert.True(t, reverse.OverallDiffPercent.IsPositive())
}

func TestAffordabilitySummaryCaseInsensitive(t *testing.T) {
	engine := NewEngine(testStore())

	summary, err := engine.AffordabilitySummary("tx", " ca ")
	require.NoError(t, err)
	assert.Equal(t, "TX", summary.BaseState)
	assert.Equal(t, "CA", summary.TargetState)
}

func TestAffordabilitySummaryUnknownState(t *testing.T) {
	engine := NewEngine(testStore())

	_, err := engine.AffordabilitySummary("CA", "ZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRelativeAffordability(t *testing.T) {
	engine := NewEngine(testStore())

	rows, err := engine.RelativeAffordability("TX")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Sorted by state code with exactly one base row at zero diff.
	assert.Equal(t, "CA", rows[0].StateCode)
	assert.Equal(t, "CO", rows[1].StateCode)
	assert.Equal(t, "TX", rows[2].StateCode)

	baseCount := 0
	for _, row := range rows {
		if row.IsBase {
			baseCount++
			assert.True(t, row.RelativeDiff.IsZero(), "base state diff must be zero")
		}
	}
	assert.Equal(t, 1, baseCount)
}
