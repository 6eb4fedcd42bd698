package findash

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a signed monetary value with an optional currency code.
// The currency is weak: transactions inherit the currency of their account,
// so a Money without a currency is a legitimate value, not an error.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float32:
		return decimal.NewFromFloat32(n)
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	default:
		return decimal.Zero
	}
}

// currency returns the full go-money currency for formatting purposes.
func (m Money) currency() money.Currency {
	// to get a never nil currency we need to call the money constructor
	return *money.New(0, m.cur).Currency()
}

// String renders the value with its currency formatting rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                   { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur merges two currencies: "" is totally weak, and on a mismatch the left
// operand wins. Store operations never fail, so a mismatch degrades to
// last-write-wins instead of an error.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// Ratio returns m/n as a fraction in [0,1]-ish space (callers scale to percent).
// Dividing by a zero Money is the caller's problem to avoid; the ok result is
// false in that case and the ratio is zero.
func (m Money) Ratio(n Money) (ratio float64, ok bool) {
	if n.value.IsZero() {
		return 0, false
	}
	return m.value.Div(n.value).InexactFloat64(), true
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

// MarshalJSON writes the bare decimal value; records embed the currency as a
// sibling key where the data model calls for one.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(int32(m.currency().Fraction)).MarshalJSON()
}
