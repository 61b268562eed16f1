package kernel

import (
	"fmt"
	"math"

	"returns/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in the smallest
// currency unit (e.g. cents). Amounts are always non-negative integers;
// the refund rules floor every computed amount and never allow it to go
// below zero.
//
// The zero value of Money is a valid zero amount, so Money can be embedded
// in aggregates without a constructor guard. Use NewMoney to validate
// externally supplied amounts and MoneyFromFloat to floor computed ones.
//
// Example usage:
//
//	refund, err := kernel.NewMoney(1500)
//	if err != nil {
//	    // handle negative amount
//	}
//	remaining := refund.SubtractFloored(shippingTotal)
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an integer amount.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates a Money value from a computed fractional amount.
// The amount is floored to an integer; negative results clamp to zero.
// This implements the refund-amount rule: computed refunds are floored
// and never drop below zero.
func MoneyFromFloat(amount float64) Money {
	floored := math.Floor(amount)
	if floored < 0 {
		return Money{}
	}
	return Money{amount: int64(floored)}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// SubtractFloored returns m minus other, floored at zero.
func (m Money) SubtractFloored(other Money) Money {
	if other.amount >= m.amount {
		return Money{}
	}
	return Money{amount: m.amount - other.amount}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}
