package forecast

import (
	"fmt"
	"math"
)

// Ordinary least-squares linear regression, solved through the normal
// equations. The feature count here is tiny (five columns), so building
// the (p+1)x(p+1) normal matrix and eliminating it directly is cheap and
// exact enough.

// Model is a fitted linear model y = intercept + sum(weights[i]*x[i]).
type Model struct {
	Intercept float64
	Weights   []float64
}

// Predict evaluates the model on one feature row.
func (m *Model) Predict(features []float64) float64 {
	y := m.Intercept
	for i, w := range m.Weights {
		if i < len(features) {
			y += w * features[i]
		}
	}
	return y
}

// fitOLS fits a linear model to the rows of x against y. When the normal
// matrix is singular (rank-deficient data, e.g. very short series), the
// fit is retried with a small ridge penalty so training degrades
// gracefully instead of failing.
func fitOLS(x [][]float64, y []float64) (*Model, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("fit: need matching non-empty features and targets")
	}
	p := len(x[0])

	model, err := solveNormalEquations(x, y, p, 0)
	if err != nil {
		model, err = solveNormalEquations(x, y, p, 1e-6)
	}
	return model, err
}

// solveNormalEquations builds (X'X + ridge*I) w = X'y with an implicit
// leading intercept column and solves by Gaussian elimination with
// partial pivoting.
func solveNormalEquations(x [][]float64, y []float64, p int, ridge float64) (*Model, error) {
	n := p + 1 // intercept column
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}

	for r, row := range x {
		aug := make([]float64, n)
		aug[0] = 1
		copy(aug[1:], row)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a[i][j] += aug[i] * aug[j]
			}
			b[i] += aug[i] * y[r]
		}
	}
	for i := 0; i < n; i++ {
		a[i][i] += ridge
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("fit: singular normal matrix")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	// Back substitution.
	solution := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * solution[j]
		}
		solution[i] = sum / a[i][i]
	}

	return &Model{Intercept: solution[0], Weights: solution[1:]}, nil
}

// meanAbsoluteError averages |actual-predicted| over the given rows.
func meanAbsoluteError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual))
}

// rSquared is the coefficient of determination. A constant target with a
// perfect fit scores 1; a constant target with residual error scores 0.
func rSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	var mean float64
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	var ssRes, ssTot float64
	for i := range actual {
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
		ssTot += (actual[i] - mean) * (actual[i] - mean)
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
