// Package money provides a value object for monetary amounts.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (cents).
//   - Arithmetic never silently produces a negative result.
//
// The system is single-currency, so Money carries no currency code.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount represents a monetary amount as an integer number of cents.
type Amount = int64

var (
	// ErrInvalidAmount is returned when a string cannot be parsed as a
	// non-negative amount with at most two decimal places.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an operation would result in a
	// negative amount.
	ErrNegativeAmount = errors.New("resulting amount cannot be negative")

	// ErrAmountTooLarge is returned when an operation would overflow the
	// representable cent range.
	ErrAmountTooLarge = errors.New("amount exceeds maximum representable value")
)

// Money represents a non-negative monetary value in cents.
type Money struct {
	amount Amount
}

// Zero is the zero monetary value.
var Zero = Money{}

// Parse converts a decimal string such as "2000" or "1500.50" into Money.
// At most two fractional digits are accepted; negative values are rejected.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if frac == "" {
			return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	if whole == "" || len(frac) > 2 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}
	// units*100 must not wrap past MaxInt64 cents
	if units > (math.MaxInt64-cents)/100 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{amount: units*100 + cents}, nil
}

// FromData reconstructs Money from a stored cent amount (DB hydration).
func FromData(amount Amount) Money {
	return Money{amount: amount}
}

// Amount returns the value in cents.
func (m Money) Amount() Amount { return m.amount }

// IsPositive reports whether the value is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// Add returns the sum of two amounts, or ErrAmountTooLarge if the sum
// would overflow.
func (m Money) Add(o Money) (Money, error) {
	if m.amount > math.MaxInt64-o.amount {
		return Zero, ErrAmountTooLarge
	}
	return Money{amount: m.amount + o.amount}, nil
}

// Sub returns m minus o, or ErrNegativeAmount if the result would be
// negative.
func (m Money) Sub(o Money) (Money, error) {
	if o.amount > m.amount {
		return Zero, ErrNegativeAmount
	}
	return Money{amount: m.amount - o.amount}, nil
}

// String formats the value as a decimal with two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
