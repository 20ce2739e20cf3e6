package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a currency code is empty or unknown
const DefaultCurrency = "INR"

var lakh = decimal.NewFromInt(100000)

// currency returns the registered currency for code, or the default one
func currency(code string) *money.Currency {
	if cur := money.GetCurrency(code); cur != nil {
		return cur
	}
	return money.GetCurrency(DefaultCurrency)
}

// FormatMoney renders an amount in major units with the currency's symbol,
// rounded to the currency's minor unit
func FormatMoney(amount float64, code string) string {
	cur := currency(code)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatWhole renders an amount rounded to whole major units
func FormatWhole(amount float64, code string) string {
	cur := currency(code)
	whole := decimal.NewFromFloat(amount).Round(0)
	minor := whole.Shift(int32(cur.Fraction))
	formatted := money.New(minor.IntPart(), cur.Code).Display()
	if cur.Fraction == 0 {
		return formatted
	}
	// drop the ".00" the formatter always appends
	suffix := cur.Decimal + zeros(cur.Fraction)
	if len(formatted) > len(suffix) && formatted[len(formatted)-len(suffix):] == suffix {
		return formatted[:len(formatted)-len(suffix)]
	}
	return formatted
}

// FormatLakh renders an INR amount as whole lakhs, e.g. ₹120L. Lakhs are
// only used for INR; other currencies get FormatWhole.
func FormatLakh(amount float64, code string) string {
	cur := currency(code)
	if cur.Code != DefaultCurrency {
		return FormatWhole(amount, cur.Code)
	}
	return cur.Grapheme + decimal.NewFromFloat(amount).Div(lakh).Round(0).String() + "L"
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
