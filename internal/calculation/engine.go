package calculation

import (
	"strings"

	"github.com/jmwill86/reloconomics/internal/refdata"
	"github.com/shopspring/decimal"
)

// FICA TAX ASSUMPTIONS (2024):
//
// 1. Social Security: 6.2% on wages up to the $168,600 wage base.
// 2. Medicare: 1.45% on all wages, plus an additional 0.9% on wages over
//    $200,000. The surtax stacks on top of the unadjusted base rate and
//    the threshold does not vary by filing status - this matches the
//    simplified withholding approximation, not exact tax law.
// 3. State tax is a flat-rate approximation of each state's schedule;
//    graduated states carry a representative effective rate.
//
// These constants model a single tax year and are configuration on the
// engine, never re-derived.

// FICAConfig holds the payroll tax parameters for the modeled year.
type FICAConfig struct {
	Year                   int
	SSRate                 decimal.Decimal
	SSWageBase             decimal.Decimal
	MedicareRate           decimal.Decimal
	AdditionalMedicareRate decimal.Decimal
	AdditionalThreshold    decimal.Decimal
}

// NewFICAConfig2024 returns the 2024 FICA parameters.
func NewFICAConfig2024() FICAConfig {
	return FICAConfig{
		Year:                   2024,
		SSRate:                 decimal.NewFromFloat(0.062),
		SSWageBase:             decimal.NewFromInt(168600),
		MedicareRate:           decimal.NewFromFloat(0.0145),
		AdditionalMedicareRate: decimal.NewFromFloat(0.009),
		AdditionalThreshold:    decimal.NewFromInt(200000),
	}
}

// Engine computes take-home pay, cost-of-living estimates and state
// affordability comparisons over an immutable reference-data store.
// All methods are pure functions of their inputs plus the store; the
// engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	Data *refdata.Store
	FICA FICAConfig
}

// NewEngine creates an engine over the given reference data.
func NewEngine(data *refdata.Store) *Engine {
	return &Engine{
		Data: data,
		FICA: NewFICAConfig2024(),
	}
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// percentOf returns part/whole*100, or zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

func normalizeStateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
