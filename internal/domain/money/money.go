package money

import (
	"github.com/shopspring/decimal"
	apperrors "github.com/umalmyha/ordering/internal/errors"
)

// Money is a non-negative monetary amount with decimal precision.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{amount: decimal.Zero}

func New(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, apperrors.NewValidationErr("money", "malformed monetary amount "+value)
	}
	if d.IsNegative() {
		return Money{}, apperrors.NewValidationErr("money", "monetary amount must not be negative")
	}
	return Money{amount: d}, nil
}

// MustNew panics on malformed input and is meant for constants and tests.
func MustNew(value string) Money {
	m, err := New(value)
	if err != nil {
		panic(err)
	}
	return m
}

func FromDecimal(d decimal.Decimal) (Money, error) {
	return New(d.String())
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Multiply(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Times returns how many whole units of other fit into m. The quotient is
// truncated toward zero - this policy is a fixed contract, loyalty award
// calculation relies on it.
func (m Money) Times(other Money) (int64, error) {
	if other.amount.IsZero() {
		return 0, apperrors.NewValidationErr("money", "division by zero amount")
	}
	return m.amount.Div(other.amount).IntPart(), nil
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.Cmp(other.amount) >= 0
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.String()
}
