package kernel

import (
	"fmt"

	"retailedge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the fixed number of fractional digits for all monetary amounts.
const moneyPrecision = 2

// ErrMoneyIsNotConstructed indicates that a Money value was not created through one
// of the constructor functions. It is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative monetary amount with fixed two-digit fractional precision.
// Amounts are rounded with banker's rounding on construction, so every Money value
// is exact at the configured precision.
//
// Money is immutable; arithmetic methods return new values. The zero value is
// invalid and must be constructed through NewMoney, MoneyFromString, or ZeroMoney.
type Money struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// The amount is rounded to two fractional digits using banker's rounding.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount:        amount.RoundBank(moneyPrecision),
		isConstructed: true,
	}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "10.00". Returns an error if the string is not a valid decimal or the
// amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money value of 0.00.
// Used as the identity element when folding line item totals.
func ZeroMoney() Money {
	return Money{
		amount:        decimal.Zero,
		isConstructed: true,
	}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount:        m.amount.Add(other.amount),
		isConstructed: true,
	}
}

// MulInt returns the amount multiplied by a non-negative integer factor,
// rounded to the configured precision.
func (m Money) MulInt(factor int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(factor))).RoundBank(moneyPrecision),
		isConstructed: true,
	}
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two fractional digits, e.g. "25.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPrecision)
}

// Validate returns ErrMoneyIsNotConstructed if the Money is the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
