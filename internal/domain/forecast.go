package domain

// Forecast results carry float64 dollar amounts rather than decimals: the
// values come out of a least-squares fit and inherit its precision.

// ModelMetrics reports holdout validation quality for one trained model.
type ModelMetrics struct {
	MAE      float64 `json:"mae"`
	RSquared float64 `json:"r2"`
}

// ForecastResult is a multi-month expense projection for one metro.
type ForecastResult struct {
	Metro string `json:"metro"`

	HistoricalDates      []string             `json:"historicalDates"`
	HistoricalTotals     []float64            `json:"historicalTotals"`
	HistoricalByCategory map[string][]float64 `json:"historicalByCategory"`

	ForecastDates      []string             `json:"forecastDates"`
	ForecastByCategory map[string][]float64 `json:"forecastByCategory"`
	ForecastTotals     []float64            `json:"forecastTotals"`

	Metrics   map[string]ModelMetrics `json:"metrics"`
	ModelType string                  `json:"modelType"`
	Features  []string                `json:"features"`
}

// SeasonalInsight describes the seasonal swing of one expense category.
type SeasonalInsight struct {
	PeakMonth        string  `json:"peakMonth"`
	PeakValue        float64 `json:"peakValue"`
	LowMonth         string  `json:"lowMonth"`
	LowValue         float64 `json:"lowValue"`
	SeasonalVariance float64 `json:"seasonalVariance"` // percent swing peak vs low
}

// SeasonalReport collects per-category seasonal insights for a metro.
type SeasonalReport struct {
	Metro         string                     `json:"metro"`
	Insights      map[string]SeasonalInsight `json:"insights"`
	SeasonalNotes map[string]string          `json:"seasonalNotes,omitempty"`
}

// MonthObservation is one historical (month, total expenses) data point.
type MonthObservation struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// MonthRankings reports the cheapest and most expensive historical months.
type MonthRankings struct {
	Metro      string             `json:"metro"`
	Cheapest   []MonthObservation `json:"cheapest"`
	Expensive  []MonthObservation `json:"expensive"`
	AnnualLow  MonthObservation   `json:"annualLow"`
	AnnualHigh MonthObservation   `json:"annualHigh"`
}

// HorizonDiff is the forecast gap between two metros for one category at
// one horizon, read B minus A.
type HorizonDiff struct {
	ValueA  float64 `json:"valueA"`
	ValueB  float64 `json:"valueB"`
	Diff    float64 `json:"diff"`
	DiffPct float64 `json:"diffPct"`
}

// HorizonComparison is a per-horizon slice of a two-metro forecast
// comparison, keyed by category plus "total".
type HorizonComparison struct {
	MonthsAhead int                    `json:"monthsAhead"`
	Date        string                 `json:"date"`
	Categories  map[string]HorizonDiff `json:"categories"`
}

// ForecastComparison compares forecasts for two metros across horizons.
type ForecastComparison struct {
	MetroA   string              `json:"metroA"`
	MetroB   string              `json:"metroB"`
	Horizons []HorizonComparison `json:"horizons"`
}
