package calculation

import (
	"fmt"
	"sort"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
)

// AffordabilitySummary compares two states by BEA Regional Price Parity.
// The RPP dataset has state-level granularity only and is independent of
// the metro cost indices; it yields broad comparative signals, not dollar
// amounts.
func (e *Engine) AffordabilitySummary(baseState, targetState string) (*domain.AffordabilitySummary, error) {
	base, ok := e.Data.RPPState(baseState)
	if !ok {
		return nil, fmt.Errorf("%w: state %q in RPP dataset", domain.ErrNotFound, baseState)
	}
	target, ok := e.Data.RPPState(targetState)
	if !ok {
		return nil, fmt.Errorf("%w: state %q in RPP dataset", domain.ErrNotFound, targetState)
	}

	overallDiff := relativeDiffPercent(base.RPP, target.RPP)
	housingDiff := relativeDiffPercent(base.Housing, target.Housing)

	return &domain.AffordabilitySummary{
		BaseState:          normalizeStateCode(baseState),
		BaseName:           base.Name,
		BaseRPP:            base.RPP,
		TargetState:        normalizeStateCode(targetState),
		TargetName:         target.Name,
		TargetRPP:          target.RPP,
		OverallDiffPercent: overallDiff,
		HousingDiffPercent: housingDiff,
		IsCheaper:          overallDiff.IsNegative(),
	}, nil
}

// RelativeAffordability tabulates every state's price level against a
// base state, sorted by state code. This is the data behind an
// affordability heat map; rendering is the caller's concern.
func (e *Engine) RelativeAffordability(baseState string) ([]domain.StateAffordability, error) {
	base, ok := e.Data.RPPState(baseState)
	if !ok {
		return nil, fmt.Errorf("%w: state %q in RPP dataset", domain.ErrNotFound, baseState)
	}
	baseCode := normalizeStateCode(baseState)

	rows := make([]domain.StateAffordability, 0, len(e.Data.RPP))
	for code, entry := range e.Data.RPP {
		rows = append(rows, domain.StateAffordability{
			StateCode:    code,
			StateName:    entry.Name,
			RPP:          entry.RPP,
			HousingRPP:   entry.Housing,
			RelativeDiff: relativeDiffPercent(base.RPP, entry.RPP),
			IsBase:       code == baseCode,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StateCode < rows[j].StateCode })
	return rows, nil
}

// relativeDiffPercent returns (target-base)/base*100 rounded to one
// decimal place, or zero when base is not positive.
func relativeDiffPercent(base, target decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return target.Sub(base).Div(base).Mul(hundred).Round(1)
}
