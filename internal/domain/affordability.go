package domain

import "github.com/shopspring/decimal"

// AffordabilitySummary compares two states by BEA Regional Price Parity.
type AffordabilitySummary struct {
	BaseState          string          `json:"baseState"`
	BaseName           string          `json:"baseName"`
	BaseRPP            decimal.Decimal `json:"baseRpp"`
	TargetState        string          `json:"targetState"`
	TargetName         string          `json:"targetName"`
	TargetRPP          decimal.Decimal `json:"targetRpp"`
	OverallDiffPercent decimal.Decimal `json:"overallDiffPercent"`
	HousingDiffPercent decimal.Decimal `json:"housingDiffPercent"`
	IsCheaper          bool            `json:"isCheaper"`
}

// StateAffordability is one row of a relative-affordability table: how a
// state's price level compares to a chosen base state.
type StateAffordability struct {
	StateCode    string          `json:"stateCode"`
	StateName    string          `json:"stateName"`
	RPP          decimal.Decimal `json:"rpp"`
	HousingRPP   decimal.Decimal `json:"housingRpp"`
	RelativeDiff decimal.Decimal `json:"relativeDiff"` // percent vs base
	IsBase       bool            `json:"isBase"`
}
