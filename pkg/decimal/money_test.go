package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.6)
	assert.Equal(t, "13", m.String())

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	assert.True(t, m2.Decimal.Equal(d))

	m3, err := NewMoneyFromString("123.45")
	require.NoError(t, err)
	assert.Equal(t, "123", m3.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestRoundWhole(t *testing.T) {
	// Halves go toward positive infinity: 2.5 -> 3, -2.5 -> -2
	cases := []struct{ in, out string }{
		{"2.4", "2"},
		{"2.5", "3"},
		{"2.6", "3"},
		{"-2.4", "-2"},
		{"-2.5", "-2"},
		{"-2.6", "-3"},
		{"1030000.0000001", "1030000"},
	}
	for _, c := range cases {
		got := RoundWhole(stddec.RequireFromString(c.in))
		assert.Equal(t, c.out, got.String(), "RoundWhole(%s)", c.in)
	}
}

func TestGrowAndArithmetic(t *testing.T) {
	m := NewMoney(1000000).Grow(stddec.NewFromFloat(0.07))
	assert.Equal(t, "1070000", m.String())

	m = m.Sub(NewMoney(40000)).Add(NewMoney(500))
	assert.Equal(t, "1030500", m.String())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000000, "$1,000,000"},
		{1234567.5, "$1,234,568"},
		{-41200, "-$41,200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewMoney(tt.in).Format())
	}
	assert.Equal(t, "$1.5M", NewMoney(1500000).FormatMillions())
	assert.Equal(t, "$1,030,000", FormatCurrency(stddec.NewFromInt(1030000)))
}

func TestParseMoney(t *testing.T) {
	assert.True(t, ParseMoney("$1,000,000").Equal(stddec.NewFromInt(1000000)))
	assert.True(t, ParseMoney(" 40000 ").Equal(stddec.NewFromInt(40000)))
	assert.True(t, ParseMoney("$-12.5").Equal(stddec.NewFromFloat(-12.5)))
	assert.True(t, ParseMoney("abc").IsZero())
	assert.True(t, ParseMoney("").IsZero())

	_, err := ParseMoneyStrict("12k")
	assert.Error(t, err)
}

func TestParseRate(t *testing.T) {
	assert.True(t, ParseRate("7%").Equal(stddec.NewFromFloat(0.07)))
	assert.True(t, ParseRate("0.03").Equal(stddec.NewFromFloat(0.03)))
	assert.True(t, ParseRate("2.5 %").Equal(stddec.NewFromFloat(0.025)))
	assert.True(t, ParseRate("seven").IsZero())

	_, err := ParseRateStrict("%")
	assert.Error(t, err)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "4.00%", FormatPercent(stddec.NewFromFloat(0.04)))
	assert.Equal(t, "-4.00%", FormatPercent(stddec.NewFromFloat(-0.04)))
}
