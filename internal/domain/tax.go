package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies a federal tax filing status.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// FilingStatuses lists all supported filing statuses in display order.
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// ParseFilingStatus normalizes a user-supplied filing status string.
func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FilingStatuses {
		if fs == known {
			return fs, nil
		}
	}
	return "", fmt.Errorf("%w: unknown filing status %q", ErrInvalidInput, s)
}

// Label returns a human-readable name for the filing status.
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedJointly:
		return "Married Filing Jointly"
	case FilingMarriedSeparately:
		return "Married Filing Separately"
	case FilingHeadOfHousehold:
		return "Head of Household"
	}
	return string(fs)
}

// BracketTax is the portion of tax owed within a single federal bracket.
type BracketTax struct {
	Rate   decimal.Decimal `json:"rate"`
	Income decimal.Decimal `json:"income"`
	Tax    decimal.Decimal `json:"tax"`
}

// FederalTaxResult is the outcome of a progressive federal tax calculation.
type FederalTaxResult struct {
	GrossIncome       decimal.Decimal `json:"grossIncome"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	FederalTax        decimal.Decimal `json:"federalTax"`
	EffectiveRate     decimal.Decimal `json:"effectiveRate"` // percent of gross
	BracketBreakdown  []BracketTax    `json:"bracketBreakdown"`
}

// StateTaxResult is the outcome of a flat-rate state tax estimate.
type StateTaxResult struct {
	State       string          `json:"state"`
	StateCode   string          `json:"stateCode"`
	Rate        decimal.Decimal `json:"rate"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	TaxType     string          `json:"taxType"`
	StateTax    decimal.Decimal `json:"stateTax"`
}

// FICAResult breaks down Social Security and Medicare taxes.
type FICAResult struct {
	SocialSecurity decimal.Decimal `json:"socialSecurity"`
	Medicare       decimal.Decimal `json:"medicare"`
	TotalFICA      decimal.Decimal `json:"totalFica"`
	FICARate       decimal.Decimal `json:"ficaRate"` // percent of gross
}

// TakeHomeBreakdown is the full take-home pay estimate for one location.
// TakeHomeAnnual + TotalTaxes always equals GrossIncome exactly.
type TakeHomeBreakdown struct {
	GrossIncome  decimal.Decimal `json:"grossIncome"`
	FilingStatus FilingStatus    `json:"filingStatus"`
	State        string          `json:"state"`
	StateCode    string          `json:"stateCode"`

	StandardDeduction    decimal.Decimal `json:"standardDeduction"`
	TaxableIncome        decimal.Decimal `json:"taxableIncome"`
	FederalTax           decimal.Decimal `json:"federalTax"`
	FederalEffectiveRate decimal.Decimal `json:"federalEffectiveRate"`

	StateTax  decimal.Decimal `json:"stateTax"`
	StateRate decimal.Decimal `json:"stateRate"` // percent

	SocialSecurity decimal.Decimal `json:"socialSecurity"`
	Medicare       decimal.Decimal `json:"medicare"`
	TotalFICA      decimal.Decimal `json:"totalFica"`

	TotalTaxes      decimal.Decimal `json:"totalTaxes"`
	TakeHomeAnnual  decimal.Decimal `json:"takeHomeAnnual"`
	TakeHomeMonthly decimal.Decimal `json:"takeHomeMonthly"`
	OverallTaxRate  decimal.Decimal `json:"overallTaxRate"` // percent
}
