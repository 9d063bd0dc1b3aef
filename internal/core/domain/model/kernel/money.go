package kernel

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places an amount may carry.
const MoneyScale = 2

var (
	ErrNegativeAmount        = errs.NewValueIsInvalidError("amount")
	ErrAmountTooPrecise      = errs.NewValueIsInvalidErrorWithCause("amount", errors.New("more than 2 decimal places"))
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")
)

// Money is a non-negative amount in the shop's single currency (BRL), exact
// to the cent. Sums and line totals of cent amounts stay exact, so what is
// computed in memory equals what numeric(10,2) columns give back.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rejects negative amounts and amounts with fractions of a cent.
// Trailing zeros such as "10.500" are accepted.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrNegativeAmount, amount.String())
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, fmt.Errorf("%w: %s", ErrAmountTooPrecise, amount.String())
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal literal such as "149.90".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney panics on invalid input. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times multiplies the amount by a line quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
