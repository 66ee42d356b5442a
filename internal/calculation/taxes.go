package calculation

import (
	"fmt"

	"github.com/jmwill86/reloconomics/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateFederalTax computes federal income tax using strict progressive
// brackets: only the income that falls within a bracket is taxed at that
// bracket's rate. The walk stops as soon as the taxable income is
// exhausted.
func (e *Engine) CalculateFederalTax(grossIncome decimal.Decimal, status domain.FilingStatus) (*domain.FederalTaxResult, error) {
	if grossIncome.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross income cannot be negative", domain.ErrInvalidInput)
	}
	profile, ok := e.Data.FilingStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown filing status %q", domain.ErrInvalidInput, status)
	}

	taxableIncome := grossIncome.Sub(profile.StandardDeduction)
	if taxableIncome.LessThan(decimal.Zero) {
		taxableIncome = decimal.Zero
	}

	totalTax := decimal.Zero
	remaining := taxableIncome
	var breakdown []domain.BracketTax

	for _, bracket := range profile.Brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		// The top bracket has no upper bound; everything left lands in it.
		bracketIncome := remaining
		if bracket.Max != nil {
			width := bracket.Max.Sub(bracket.Min)
			bracketIncome = decimal.Min(remaining, width)
		}
		bracketTax := bracketIncome.Mul(bracket.Rate)

		if bracketIncome.IsPositive() {
			breakdown = append(breakdown, domain.BracketTax{
				Rate:   bracket.Rate,
				Income: bracketIncome,
				Tax:    bracketTax,
			})
		}

		totalTax = totalTax.Add(bracketTax)
		remaining = remaining.Sub(bracketIncome)
	}

	return &domain.FederalTaxResult{
		GrossIncome:       grossIncome,
		StandardDeduction: profile.StandardDeduction,
		TaxableIncome:     taxableIncome,
		FederalTax:        totalTax,
		EffectiveRate:     percentOf(totalTax, grossIncome),
		BracketBreakdown:  breakdown,
	}, nil
}

// CalculateStateTax estimates state income tax at the state's flat rate.
// States without an income tax carry rate 0. The code match is
// case-insensitive.
func (e *Engine) CalculateStateTax(grossIncome decimal.Decimal, stateCode string) (*domain.StateTaxResult, error) {
	if grossIncome.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross income cannot be negative", domain.ErrInvalidInput)
	}
	profile, ok := e.Data.StateTax(stateCode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown state code %q", domain.ErrInvalidInput, stateCode)
	}

	return &domain.StateTaxResult{
		State:       profile.Name,
		StateCode:   normalizeStateCode(stateCode),
		Rate:        profile.Rate,
		RatePercent: profile.Rate.Mul(hundred),
		TaxType:     profile.Type,
		StateTax:    grossIncome.Mul(profile.Rate),
	}, nil
}

// CalculateFICA computes Social Security and Medicare taxes. Social
// Security is capped at the wage base; the additional Medicare rate
// applies to income above the threshold on top of the base rate.
func (e *Engine) CalculateFICA(grossIncome decimal.Decimal) (*domain.FICAResult, error) {
	if grossIncome.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross income cannot be negative", domain.ErrInvalidInput)
	}

	ssTaxable := decimal.Min(grossIncome, e.FICA.SSWageBase)
	socialSecurity := ssTaxable.Mul(e.FICA.SSRate)

	medicare := grossIncome.Mul(e.FICA.MedicareRate)
	if grossIncome.GreaterThan(e.FICA.AdditionalThreshold) {
		excess := grossIncome.Sub(e.FICA.AdditionalThreshold)
		medicare = medicare.Add(excess.Mul(e.FICA.AdditionalMedicareRate))
	}

	totalFICA := socialSecurity.Add(medicare)

	return &domain.FICAResult{
		SocialSecurity: socialSecurity,
		Medicare:       medicare,
		TotalFICA:      totalFICA,
		FICARate:       percentOf(totalFICA, grossIncome),
	}, nil
}

// CalculateTakeHome composes federal, state and FICA taxes into a full
// take-home pay breakdown. TakeHomeAnnual plus TotalTaxes equals the
// gross income exactly.
func (e *Engine) CalculateTakeHome(grossIncome decimal.Decimal, status domain.FilingStatus, stateCode string) (*domain.TakeHomeBreakdown, error) {
	federal, err := e.CalculateFederalTax(grossIncome, status)
	if err != nil {
		return nil, err
	}
	state, err := e.CalculateStateTax(grossIncome, stateCode)
	if err != nil {
		return nil, err
	}
	fica, err := e.CalculateFICA(grossIncome)
	if err != nil {
		return nil, err
	}

	totalTaxes := federal.FederalTax.Add(state.StateTax).Add(fica.TotalFICA)
	takeHome := grossIncome.Sub(totalTaxes)

	return &domain.TakeHomeBreakdown{
		GrossIncome:  grossIncome,
		FilingStatus: status,
		State:        state.State,
		StateCode:    state.StateCode,

		StandardDeduction:    federal.StandardDeduction,
		TaxableIncome:        federal.TaxableIncome,
		FederalTax:           federal.FederalTax,
		FederalEffectiveRate: federal.EffectiveRate,

		StateTax:  state.StateTax,
		StateRate: state.RatePercent,

		SocialSecurity: fica.SocialSecurity,
		Medicare:       fica.Medicare,
		TotalFICA:      fica.TotalFICA,

		TotalTaxes:      totalTaxes,
		TakeHomeAnnual:  takeHome,
		TakeHomeMonthly: takeHome.Div(twelve),
		OverallTaxRate:  percentOf(totalTaxes, grossIncome),
	}, nil
}
