package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
)

// Monetary amounts are stored as signed integers in scale units of
// 1/10,000 of a currency's major unit. All arithmetic on stored amounts
// is integer arithmetic; decimal conversion happens only at the API
// boundary.
const (
	// UnitExponent is the power of ten between a major currency unit
	// and one scale unit.
	UnitExponent int32 = 4
	// UnitsPerMajorUnit is the number of scale units in one major unit.
	UnitsPerMajorUnit int64 = 10_000
)

// Money is an immutable monetary value: an integer amount in scale
// units plus a 3-letter uppercase currency code.
type Money struct {
	Amount   int64  `json:"amount"` // scale units (1/10,000 major unit)
	Currency string `json:"currency"`
}

// NewMoney builds a Money from a decimal amount in major units.
// The amount must be positive. It is rounded half away from zero to two
// decimal places before being scaled to integer units, so a value like
// 10.995 becomes 11.00 rather than being rejected.
// The currency code is taken as given; callers validate it against the
// currency registry first.
func NewMoney(amount decimal.Decimal, currencyCode string) (Money, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Money{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidAmount)
	}
	// Round(2) rounds half away from zero; shifting the rounded value by
	// the unit exponent is exact, so converting to an integer loses
	// nothing. The scaled value must still fit in int64, otherwise the
	// stored amount would silently wrap.
	units := amount.Round(2).Shift(UnitExponent).BigInt()
	if !units.IsInt64() {
		return Money{}, fmt.Errorf("%w: amount too large", apperrors.ErrInvalidAmount)
	}
	return Money{Amount: units.Int64(), Currency: currencyCode}, nil
}

// MoneyFromUnits builds a Money directly from an integer scale-unit
// amount, e.g. when reading a stored row or a conversion result.
func MoneyFromUnits(units int64, currencyCode string) Money {
	return Money{Amount: units, Currency: currencyCode}
}

// ToDecimal returns the amount in major units as an exact fixed-point
// decimal. No binary float division is involved.
func (m Money) ToDecimal() decimal.Decimal {
	return decimal.New(m.Amount, -UnitExponent)
}

// Add sums two amounts of the same currency using integer addition.
// Adding across currencies is a programming error and is rejected.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", apperrors.ErrValidation, other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}
