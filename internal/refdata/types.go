package refdata

import (
	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket is one federal tax bracket. Max is nil for the unbounded top
// bracket. Brackets are stored ascending and partition [0, inf).
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// FilingStatusProfile holds the standard deduction and bracket schedule
// for one filing status.
type FilingStatusProfile struct {
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	Brackets          []TaxBracket    `yaml:"brackets" json:"brackets"`
}

// StateTaxProfile is the flat-rate state income tax approximation for one
// state. States without an income tax carry rate 0 and type "none".
type StateTaxProfile struct {
	Name string          `yaml:"name" json:"name"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	Type string          `yaml:"type" json:"type"` // flat, none, graduated_simplified
}

// MetroCostProfile holds per-category cost-of-living indices for a metro,
// where 100 = national average.
type MetroCostProfile struct {
	State          string          `yaml:"state" json:"state"`
	OverallIndex   decimal.Decimal `yaml:"overall_index" json:"overallIndex"`
	Housing        decimal.Decimal `yaml:"housing" json:"housing"`
	Food           decimal.Decimal `yaml:"food" json:"food"`
	Transportation decimal.Decimal `yaml:"transportation" json:"transportation"`
	Healthcare     decimal.Decimal `yaml:"healthcare" json:"healthcare"`
	Utilities      decimal.Decimal `yaml:"utilities" json:"utilities"`
}

// Index returns the index value for a named expense category.
func (m MetroCostProfile) Index(category string) decimal.Decimal {
	switch category {
	case "housing":
		return m.Housing
	case "food":
		return m.Food
	case "transportation":
		return m.Transportation
	case "healthcare":
		return m.Healthcare
	case "utilities":
		return m.Utilities
	}
	return decimal.Zero
}

// ExpenseRecord is one month of observed expenses for a metro, in dollars.
type ExpenseRecord struct {
	Date           string  `yaml:"date" json:"date"` // YYYY-MM
	Housing        float64 `yaml:"housing" json:"housing"`
	Food           float64 `yaml:"food" json:"food"`
	Transportation float64 `yaml:"transportation" json:"transportation"`
	Healthcare     float64 `yaml:"healthcare" json:"healthcare"`
	Utilities      float64 `yaml:"utilities" json:"utilities"`
}

// Value returns the dollar amount for a named expense category.
func (r ExpenseRecord) Value(category string) float64 {
	switch category {
	case "housing":
		return r.Housing
	case "food":
		return r.Food
	case "transportation":
		return r.Transportation
	case "healthcare":
		return r.Healthcare
	case "utilities":
		return r.Utilities
	}
	return 0
}

// Total sums the record across all tracked categories.
func (r ExpenseRecord) Total() float64 {
	var total float64
	for _, c := range domain.ExpenseCategories {
		total += r.Value(c)
	}
	return total
}

// StateRPP is the BEA Regional Price Parity entry for one state,
// where 100 = national average price level.
type StateRPP struct {
	Name    string          `yaml:"name" json:"name"`
	RPP     decimal.Decimal `yaml:"rpp" json:"rpp"`
	Housing decimal.Decimal `yaml:"housing" json:"housing"`
}

// On-disk file shapes. The federal and state tax files are plain
// top-level mappings and unmarshal directly into their map types.

type costOfLivingFile struct {
	NationalAverageExpenses map[string]decimal.Decimal  `yaml:"national_average_expenses"`
	Metros                  map[string]MetroCostProfile `yaml:"metros"`
}

type historicalFile struct {
	Data          map[string][]ExpenseRecord `yaml:"data"`
	SeasonalNotes map[string]string          `yaml:"seasonal_notes"`
}

type stateRPPFile struct {
	States map[string]StateRPP `yaml:"states"`
}
