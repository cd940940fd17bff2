// internal/models/money.go
package models

import (
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount for prices and shipping costs. It
// serializes as a quoted string with exactly two fractional digits
// ("1000.00", never "1000" and never a JSON float). Comparison and
// arithmetic come from the embedded decimal.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}
