package forecast

import "time"

// Feature engineering for expense forecasting. Each usable observation
// yields the row [lag1, lag2, lag3, month, trend]:
//   - lag features: the expense 1, 2 and 3 months back (momentum)
//   - month of year 1-12 (seasonality)
//   - linear time index (long-term trend)

const lagCount = 3

// FeatureNames describes the model inputs, in column order.
var FeatureNames = []string{"lag_1", "lag_2", "lag_3", "month (seasonality)", "trend"}

// PrepareFeatures builds the feature matrix and target vector from a
// monthly series and its YYYY-MM dates. Returns empty slices when fewer
// than four points exist, since the first usable row needs three lags.
func PrepareFeatures(values []float64, dates []string) (x [][]float64, y []float64) {
	if len(values) <= lagCount || len(dates) != len(values) {
		return nil, nil
	}

	for i := lagCount; i < len(values); i++ {
		row := []float64{
			values[i-1],
			values[i-2],
			values[i-3],
			float64(monthOf(dates[i])),
			float64(i),
		}
		x = append(x, row)
		y = append(y, values[i])
	}
	return x, y
}

// monthOf extracts the calendar month (1-12) from a YYYY-MM date, or 0
// when the date is malformed.
func monthOf(date string) int {
	t, err := time.Parse("2006-01", date)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// lagWindow holds the three most recent observations, newest last. It is
// a value type: push returns a new window, leaving the old one intact, so
// each forecast step is a pure function of (window, month, trend, model).
type lagWindow [lagCount]float64

// newLagWindow takes the last three values of a series.
func newLagWindow(values []float64) lagWindow {
	n := len(values)
	return lagWindow{values[n-3], values[n-2], values[n-1]}
}

// features assembles the model input for the next step.
func (w lagWindow) features(month, trend int) []float64 {
	return []float64{w[2], w[1], w[0], float64(month), float64(trend)}
}

// push appends a value, dropping the oldest.
func (w lagWindow) push(v float64) lagWindow {
	return lagWindow{w[1], w[2], v}
}
