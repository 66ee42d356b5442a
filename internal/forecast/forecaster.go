package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/jmwill86/reloconomics/internal/refdata"
)

// validationMonths is the preferred holdout size when enough feature rows
// exist; shorter series hold out what they can while keeping at least one
// training row.
const validationMonths = 6

const modelType = "Linear Regression"

var monthNames = []string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Forecaster trains per-(metro, category) expense models and projects
// them forward. Every call retrains from scratch; the datasets are small
// enough that caching fitted models is not worth the bookkeeping.
type Forecaster struct {
	Data *refdata.Store
}

// NewForecaster creates a forecaster over the given reference data.
func NewForecaster(data *refdata.Store) *Forecaster {
	return &Forecaster{Data: data}
}

// TrainedModel is a fitted category model with its validation metrics and
// the series state needed to roll a forecast forward.
type TrainedModel struct {
	Metro    string
	Category string
	Model    *Model
	Metrics  domain.ModelMetrics

	LastValues lagWindow // three most recent observations
	LastDate   string
	TrendStart int // time index of the first forecast step
}

// TrainModel fits a linear model for one expense category of one metro,
// holding out the most recent rows for validation.
func (f *Forecaster) TrainModel(metro, category string) (*TrainedModel, error) {
	series, ok := f.Data.Series(metro)
	if !ok {
		return nil, fmt.Errorf("%w: no historical data for metro %q", domain.ErrNotFound, metro)
	}

	values := make([]float64, len(series))
	dates := make([]string, len(series))
	for i, record := range series {
		values[i] = record.Value(category)
		dates[i] = record.Date
	}

	x, y := PrepareFeatures(values, dates)
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: %q in %q has %d points, need at least %d",
			domain.ErrInsufficientData, category, metro, len(series), lagCount+1)
	}

	holdout := validationMonths
	if holdout > len(x)-1 {
		holdout = len(x) - 1
	}
	split := len(x) - holdout

	model, err := fitOLS(x[:split], y[:split])
	if err != nil {
		return nil, fmt.Errorf("%w: cannot fit %q in %q: %v", domain.ErrInsufficientData, category, metro, err)
	}

	// Evaluate on the holdout; with no holdout rows fall back to the
	// training rows so metrics are always populated.
	evalX, evalY := x[split:], y[split:]
	if len(evalX) == 0 {
		evalX, evalY = x, y
	}
	predicted := make([]float64, len(evalX))
	for i, row := range evalX {
		predicted[i] = model.Predict(row)
	}

	return &TrainedModel{
		Metro:    metro,
		Category: category,
		Model:    model,
		Metrics: domain.ModelMetrics{
			MAE:      round2(meanAbsoluteError(evalY, predicted)),
			RSquared: round4(rSquared(evalY, predicted)),
		},
		LastValues: newLagWindow(values),
		LastDate:   dates[len(dates)-1],
		TrendStart: len(series),
	}, nil
}

// step predicts the next value from a rolling window, clamped to zero:
// expenses cannot be negative. Pure given (model, window, month, trend).
func step(model *Model, w lagWindow, month, trend int) float64 {
	pred := model.Predict(w.features(month, trend))
	if pred < 0 {
		return 0
	}
	return pred
}

// Forecast projects all expense categories for a metro monthsAhead months
// past the end of its history. Each step feeds the previous prediction
// back into the lag window.
func (f *Forecaster) Forecast(metro string, monthsAhead int) (*domain.ForecastResult, error) {
	if monthsAhead < 1 {
		return nil, fmt.Errorf("%w: months ahead must be at least 1", domain.ErrInvalidInput)
	}
	series, ok := f.Data.Series(metro)
	if !ok {
		return nil, fmt.Errorf("%w: no historical data for metro %q", domain.ErrNotFound, metro)
	}

	dates := make([]string, len(series))
	for i, record := range series {
		dates[i] = record.Date
	}
	forecastDates, err := futureDates(dates[len(dates)-1], monthsAhead)
	if err != nil {
		return nil, fmt.Errorf("%w: bad series dates for metro %q", domain.ErrInsufficientData, metro)
	}

	result := &domain.ForecastResult{
		Metro:                metro,
		HistoricalDates:      dates,
		HistoricalByCategory: make(map[string][]float64, len(domain.ExpenseCategories)),
		ForecastDates:        forecastDates,
		ForecastByCategory:   make(map[string][]float64, len(domain.ExpenseCategories)),
		Metrics:              make(map[string]domain.ModelMetrics, len(domain.ExpenseCategories)),
		ModelType:            modelType,
		Features:             FeatureNames,
	}

	result.HistoricalTotals = make([]float64, len(series))
	for i, record := range series {
		result.HistoricalTotals[i] = record.Total()
	}

	for _, category := range domain.ExpenseCategories {
		trained, err := f.TrainModel(metro, category)
		if err != nil {
			return nil, err
		}

		window := trained.LastValues
		predictions := make([]float64, 0, monthsAhead)
		for i, date := range forecastDates {
			pred := step(trained.Model, window, monthOf(date), trained.TrendStart+i)
			predictions = append(predictions, math.Round(pred))
			window = window.push(pred)
		}

		result.ForecastByCategory[category] = predictions
		result.Metrics[category] = trained.Metrics

		historical := make([]float64, len(series))
		for i, record := range series {
			historical[i] = record.Value(category)
		}
		result.HistoricalByCategory[category] = historical
	}

	result.ForecastTotals = make([]float64, monthsAhead)
	for i := range result.ForecastTotals {
		for _, category := range domain.ExpenseCategories {
			result.ForecastTotals[i] += result.ForecastByCategory[category][i]
		}
	}

	return result, nil
}

// SeasonalInsights averages each category by calendar month across all
// years and reports the peak and low months with the percent swing
// between them. Insights with a swing of 3% or less are noise; callers
// may suppress them.
func (f *Forecaster) SeasonalInsights(metro string) (*domain.SeasonalReport, error) {
	series, ok := f.Data.Series(metro)
	if !ok {
		return nil, fmt.Errorf("%w: no historical data for metro %q", domain.ErrNotFound, metro)
	}

	report := &domain.SeasonalReport{
		Metro:         metro,
		Insights:      make(map[string]domain.SeasonalInsight, len(domain.ExpenseCategories)),
		SeasonalNotes: f.Data.SeasonalNotes,
	}

	for _, category := range domain.ExpenseCategories {
		sums := make(map[int]float64)
		counts := make(map[int]int)
		for _, record := range series {
			month := monthOf(record.Date)
			if month == 0 {
				continue
			}
			sums[month] += record.Value(category)
			counts[month]++
		}
		if len(sums) == 0 {
			return nil, fmt.Errorf("%w: no dated records for metro %q", domain.ErrInsufficientData, metro)
		}

		peakMonth, lowMonth := 0, 0
		var peakValue, lowValue float64
		for month := 1; month <= 12; month++ {
			count, ok := counts[month]
			if !ok {
				continue
			}
			avg := sums[month] / float64(count)
			if peakMonth == 0 || avg > peakValue {
				peakMonth, peakValue = month, avg
			}
			if lowMonth == 0 || avg < lowValue {
				lowMonth, lowValue = month, avg
			}
		}

		variance := 0.0
		if lowValue > 0 {
			variance = (peakValue - lowValue) / lowValue * 100
		}

		report.Insights[category] = domain.SeasonalInsight{
			PeakMonth:        monthNames[peakMonth],
			PeakValue:        math.Round(peakValue),
			LowMonth:         monthNames[lowMonth],
			LowValue:         math.Round(lowValue),
			SeasonalVariance: round1(variance),
		}
	}

	return report, nil
}

// BestWorstMonths ranks all historical months by total expenses and
// reports the three cheapest and three most expensive, plus the single
// overall low and high.
func (f *Forecaster) BestWorstMonths(metro string) (*domain.MonthRankings, error) {
	series, ok := f.Data.Series(metro)
	if !ok {
		return nil, fmt.Errorf("%w: no historical data for metro %q", domain.ErrNotFound, metro)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: no records for metro %q", domain.ErrInsufficientData, metro)
	}

	observations := make([]domain.MonthObservation, len(series))
	for i, record := range series {
		observations[i] = domain.MonthObservation{Date: record.Date, Total: round2(record.Total())}
	}
	sort.Slice(observations, func(i, j int) bool { return observations[i].Total < observations[j].Total })

	take := 3
	if take > len(observations) {
		take = len(observations)
	}
	cheapest := make([]domain.MonthObservation, take)
	copy(cheapest, observations[:take])

	expensive := make([]domain.MonthObservation, take)
	for i := 0; i < take; i++ {
		expensive[i] = observations[len(observations)-1-i]
	}

	return &domain.MonthRankings{
		Metro:      metro,
		Cheapest:   cheapest,
		Expensive:  expensive,
		AnnualLow:  observations[0],
		AnnualHigh: observations[len(observations)-1],
	}, nil
}

// CompareForecasts runs forecasts for two metros out to the longest
// horizon, then slices the predictions at each requested horizon with
// per-category and total B-minus-A differences.
func (f *Forecaster) CompareForecasts(metroA, metroB string, horizons []int) (*domain.ForecastComparison, error) {
	if len(horizons) == 0 {
		return nil, fmt.Errorf("%w: at least one horizon is required", domain.ErrInvalidInput)
	}
	maxHorizon := 0
	for _, h := range horizons {
		if h < 1 {
			return nil, fmt.Errorf("%w: horizon %d must be at least 1", domain.ErrInvalidInput, h)
		}
		if h > maxHorizon {
			maxHorizon = h
		}
	}

	forecastA, err := f.Forecast(metroA, maxHorizon)
	if err != nil {
		return nil, fmt.Errorf("forecast for %q: %w", metroA, err)
	}
	forecastB, err := f.Forecast(metroB, maxHorizon)
	if err != nil {
		return nil, fmt.Errorf("forecast for %q: %w", metroB, err)
	}

	comparison := &domain.ForecastComparison{
		MetroA:   metroA,
		MetroB:   metroB,
		Horizons: make([]domain.HorizonComparison, 0, len(horizons)),
	}

	for _, h := range horizons {
		idx := h - 1
		slice := domain.HorizonComparison{
			MonthsAhead: h,
			Date:        forecastA.ForecastDates[idx],
			Categories:  make(map[string]domain.HorizonDiff, len(domain.ExpenseCategories)+1),
		}
		for _, category := range domain.ExpenseCategories {
			slice.Categories[category] = horizonDiff(
				forecastA.ForecastByCategory[category][idx],
				forecastB.ForecastByCategory[category][idx],
			)
		}
		slice.Categories["total"] = horizonDiff(forecastA.ForecastTotals[idx], forecastB.ForecastTotals[idx])
		comparison.Horizons = append(comparison.Horizons, slice)
	}

	return comparison, nil
}

func horizonDiff(a, b float64) domain.HorizonDiff {
	diff := b - a
	pct := 0.0
	if a != 0 {
		pct = diff / a * 100
	}
	return domain.HorizonDiff{ValueA: a, ValueB: b, Diff: round2(diff), DiffPct: round1(pct)}
}

// futureDates generates monthsAhead YYYY-MM dates following lastDate,
// wrapping December into January of the next year.
func futureDates(lastDate string, monthsAhead int) ([]string, error) {
	t, err := time.Parse("2006-01", lastDate)
	if err != nil {
		return nil, err
	}
	dates := make([]string, monthsAhead)
	for i := range dates {
		t = t.AddDate(0, 1, 0)
		dates[i] = t.Format("2006-01")
	}
	return dates, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
