package depot

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a currency.
//
// The zero Money is "absent": it has no currency and represents a value the
// source data did not provide. Absent is distinct from a zero amount in a
// currency; fee aggregation depends on that distinction.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// functions that require the full currency

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded
// half-even to the currency's usual number of decimal places.
func (m Money) String() string {
	if m.IsAbsent() {
		return ""
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).RoundBank(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrappers around the decimal value.

func (m Money) Currency() string   { return m.cur }
func (m Money) IsAbsent() bool     { return m.cur == "" }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money {
	return Money{value: m.value.Mul(n.value), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// ConvertAt converts m into the given currency using an exchange rate quoted
// as source units per unit of the target currency: the amount is multiplied
// by the inverse of the rate, with the inverse rounded half-even at the
// rate's declared scale. This matches standard accounting rounding and
// avoids a systematic bias over many small conversions.
func (m Money) ConvertAt(currency string, rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(inverseRate(rate)), cur: currency}
}

// inverseRate returns 1/rate rounded half-even at the scale rate declares.
func inverseRate(rate decimal.Decimal) decimal.Decimal {
	scale := -rate.Exponent()
	if scale < 0 {
		scale = 0
	}
	return decimal.New(1, 0).DivRound(rate, scale+4).RoundBank(scale)
}

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
