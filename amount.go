package cardpointe

import "github.com/shopspring/decimal"

// Amount is an optional monetary value. The gateway accepts amounts
// with or without a decimal point, but they must always travel on the
// wire as strings; a float would lose precision. The zero Amount is
// absent and is omitted from request payloads.
type Amount struct {
	value string
	set   bool
}

// AmountFromString builds an Amount from its wire representation,
// for example "2.01" or "201".
func AmountFromString(s string) Amount {
	return Amount{value: s, set: true}
}

// AmountFromDecimal builds an Amount from a decimal value.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d.String(), set: true}
}

// IsZero reports whether the amount was never set.
func (a Amount) IsZero() bool {
	return !a.set
}

func (a Amount) String() string {
	return a.value
}
