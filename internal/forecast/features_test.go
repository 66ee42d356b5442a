package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareFeatures(t *testing.T) {
	values := []float64{100, 110, 120, 130, 140, 150}
	dates := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}

	x, y := PrepareFeatures(values, dates)
	require.Len(t, x, 3, "six points minus three lags yields three rows")
	require.Len(t, y, 3)

	// First usable row targets the fourth point with the three before it
	// as lags, April as the month and index 3 as the trend.
	assert.Equal(t, []float64{120, 110, 100, 4, 3}, x[0])
	assert.Equal(t, 130.0, y[0])
	assert.Equal(t, []float64{140, 130, 120, 6, 5}, x[2])
	assert.Equal(t, 150.0, y[2])
}

func TestPrepareFeaturesTooShort(t *testing.T) {
	x, y := PrepareFeatures([]float64{100, 110, 120}, []string{"2024-01", "2024-02", "2024-03"})
	assert.Nil(t, x, "three points cannot produce a row")
	assert.Nil(t, y)
}

func TestPrepareFeaturesMismatchedLengths(t *testing.T) {
	x, y := PrepareFeatures([]float64{1, 2, 3, 4, 5}, []string{"2024-01"})
	assert.Nil(t, x)
	assert.Nil(t, y)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, 12, monthOf("2023-12"))
	assert.Equal(t, 1, monthOf("2024-01"))
	assert.Equal(t, 0, monthOf("not-a-date"))
}

func TestLagWindowPushIsPure(t *testing.T) {
	w := newLagWindow([]float64{10, 20, 30, 40})
	assert.Equal(t, lagWindow{20, 30, 40}, w)

	next := w.push(50)
	assert.Equal(t, lagWindow{30, 40, 50}, next)
	assert.Equal(t, lagWindow{20, 30, 40}, w, "push must not mutate the receiver")

	// Newest observation becomes lag_1.
	assert.Equal(t, []float64{40, 30, 20, 7, 9}, w.features(7, 9))
}
