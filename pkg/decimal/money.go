package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
	million = decimal.NewFromInt(1000000)
)

// Money represents a monetary amount with arbitrary precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a plain numeric string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundWhole rounds to the nearest whole unit with halves going toward positive infinity.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// RoundWhole rounds the money amount to whole currency units
func (m Money) RoundWhole() Money {
	return Money{RoundWhole(m.Decimal)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Grow applies one period of growth at the given rate
func (m Money) Grow(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Add(rate))}
}

// String returns the whole-unit representation without grouping
func (m Money) String() string {
	return RoundWhole(m.Decimal).StringFixed(0)
}

// Format renders the amount as US currency with thousands grouping, e.g. -$1,234
func (m Money) Format() string {
	rounded := RoundWhole(m.Decimal)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + "$" + humanize.BigComma(rounded.BigInt())
}

// FormatMillions renders the amount in millions with one decimal, e.g. $1.2M (chart axis labels)
func (m Money) FormatMillions() string {
	return "$" + m.Decimal.Div(million).StringFixed(1) + "M"
}

// FormatCurrency is a convenience wrapper around Money.Format
func FormatCurrency(d decimal.Decimal) string {
	return NewMoneyFromDecimal(d).Format()
}

// ParseMoney parses free-form currency text such as "$1,000,000".
// Text that does not parse yields zero.
func ParseMoney(text string) decimal.Decimal {
	d, err := ParseMoneyStrict(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseMoneyStrict is ParseMoney but reports unparseable input.
func ParseMoneyStrict(text string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "_", "").Replace(strings.TrimSpace(text))
	return decimal.NewFromString(cleaned)
}

// ParseRate parses a rate given either as a fraction ("0.07") or a percentage ("7%").
// Text that does not parse yields zero.
func ParseRate(text string) decimal.Decimal {
	d, err := ParseRateStrict(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseRateStrict is ParseRate but reports unparseable input.
func ParseRateStrict(text string) (decimal.Decimal, error) {
	t := strings.TrimSpace(text)
	if strings.HasSuffix(t, "%") {
		d, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(t, "%")))
		if err != nil {
			return decimal.Zero, err
		}
		return d.Div(hundred), nil
	}
	return decimal.NewFromString(t)
}

// FormatPercent renders a fraction as a percentage with two decimals, e.g. 0.04 -> 4.00%
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}
