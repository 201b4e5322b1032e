package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Epsilon is the settlement tolerance. Balances within Epsilon of zero are
// considered settled.
var Epsilon = decimal.New(1, -2)

// ParseAmount parses a user-supplied amount. It accepts dot or comma decimal
// separators and rejects empty, malformed and negative input.
//
// Examples:
//
//	ParseAmount("55000")    -> 55000, nil
//	ParseAmount("12,50")    -> 12.5, nil
//	ParseAmount("-3")       -> 0, ErrNegativeAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// AmountFromFloat converts a float to a decimal amount. Non-finite values
// become zero so that aggregation stays total.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Settled reports whether d is within Epsilon of zero.
func Settled(d decimal.Decimal) bool {
	return d.Abs().LessThan(Epsilon)
}
