package domain

import "errors"

// Error kinds reported by the engines. Callers classify failures with
// errors.Is; the wrapped message carries the offending key or value.
var (
	// ErrInvalidInput signals an unrecognized filing status or state code,
	// or a malformed gross income.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound signals an unknown metro or state key in a dataset.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientData signals too few historical points to build
	// forecast features (fewer than 4 for a category).
	ErrInsufficientData = errors.New("insufficient data")
)
