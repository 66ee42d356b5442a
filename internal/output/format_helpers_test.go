package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
}

func TestFormatSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$250.00", FormatSignedCurrency(decimal.NewFromInt(250)))
	assert.Equal(t, "-$250.00", FormatSignedCurrency(decimal.NewFromInt(-250)))
	assert.Equal(t, "+$0.00", FormatSignedCurrency(decimal.Zero))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "22.50%", FormatPercentage(decimal.RequireFromString("22.5")))
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$1900", FormatDollars(1900))
	assert.Equal(t, "+$35", FormatSignedDollars(35))
	assert.Equal(t, "-$35", FormatSignedDollars(-35))
}
