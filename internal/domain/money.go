package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary values cross the API boundary as major-unit decimals ("12.50")
// and are stored as int64 minor units (1250). All arithmetic happens on
// the integer representation; decimals are only parsed and formatted here.
const minorUnitExponent = 2

// ToMinorUnits converts a major-unit decimal amount to minor units.
// Returns ErrInvalidAmount if the amount has more than two decimal
// digits, since such an amount cannot be represented exactly.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(minorUnitExponent)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: at most %d decimal digits allowed", ErrInvalidAmount, minorUnitExponent)
	}
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount out of range", ErrInvalidAmount)
	}
	return shifted.IntPart(), nil
}

// FromMinorUnits converts minor units back to a major-unit decimal.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Shift(-minorUnitExponent)
}
