// Package types implements special types for Pouch.
package types

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount in milliunits, 1/1000 of the display currency
// unit. All ledger arithmetic happens on this integer type; decimal values
// only ever appear at presentation boundaries.
type Amount int64

// ErrAmountPrecision is returned when a decimal value cannot be represented
// exactly in milliunits.
var ErrAmountPrecision = errors.New("amounts can have at most three decimal places")

// AmountFromDecimal converts a decimal display value to milliunits.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	m := d.Mul(decimal.NewFromInt(1000))
	if !m.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrAmountPrecision, d)
	}

	return Amount(m.IntPart()), nil
}

// ParseAmount parses a decimal string like "12.34" into milliunits.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return AmountFromDecimal(d)
}

// Decimal returns the display value for the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -3)
}

// Neg returns the amount with its sign inverted.
func (a Amount) Neg() Amount {
	return -a
}

// Abs returns the amount without its sign.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}

	return a
}

func (a Amount) IsZero() bool {
	return a == 0
}

func (a Amount) IsPositive() bool {
	return a > 0
}

func (a Amount) IsNegative() bool {
	return a < 0
}

// String returns the decimal display representation, e.g. "12.34" for 12340.
func (a Amount) String() string {
	return a.Decimal().String()
}
