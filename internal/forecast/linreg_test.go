package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitOLSRecoversExactLinearRelation(t *testing.T) {
	// y = 5 + 2*a + 3*b, no noise.
	x := [][]float64{
		{1, 1}, {2, 1}, {3, 2}, {4, 5}, {5, 3}, {6, 8},
	}
	y := make([]float64, len(x))
	for i, row := range x {
		y[i] = 5 + 2*row[0] + 3*row[1]
	}

	model, err := fitOLS(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 5, model.Intercept, 1e-6)
	assert.InDelta(t, 2, model.Weights[0], 1e-6)
	assert.InDelta(t, 3, model.Weights[1], 1e-6)

	assert.InDelta(t, 5+2*10+3*4, model.Predict([]float64{10, 4}), 1e-6)
}

func TestFitOLSFallsBackToRidgeOnCollinearFeatures(t *testing.T) {
	// Second column duplicates the first, so the plain normal matrix is
	// singular; the ridge retry must still produce a usable model.
	x := [][]float64{
		{1, 1}, {2, 2}, {3, 3}, {4, 4},
	}
	y := []float64{2, 4, 6, 8}

	model, err := fitOLS(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 10, model.Predict([]float64{5, 5}), 0.1)
}

func TestFitOLSRejectsEmptyInput(t *testing.T) {
	_, err := fitOLS(nil, nil)
	assert.Error(t, err)

	_, err = fitOLS([][]float64{{1}}, []float64{1, 2})
	assert.Error(t, err)
}

func TestMeanAbsoluteError(t *testing.T) {
	assert.Equal(t, 0.0, meanAbsoluteError(nil, nil))
	assert.InDelta(t, 1.5, meanAbsoluteError([]float64{10, 20}, []float64{11, 18}), 1e-9)
}

func TestRSquared(t *testing.T) {
	actual := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1, rSquared(actual, []float64{1, 2, 3, 4}), 1e-9)
	assert.Less(t, rSquared(actual, []float64{4, 3, 2, 1}), 0.0,
		"predictions worse than the mean score negative")

	// Constant target: perfect fit scores 1, anything else scores 0.
	constant := []float64{5, 5, 5}
	assert.Equal(t, 1.0, rSquared(constant, []float64{5, 5, 5}))
	assert.Equal(t, 0.0, rSquared(constant, []float64{4, 5, 6}))
}
