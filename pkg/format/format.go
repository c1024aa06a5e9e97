package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout     = "Jan 2, 2006"
	DateTimeLayout = "Jan 2, 2006, 3:04 PM"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Currency renders an amount with two decimals, thousands separators and the
// currency symbol, or the code when no symbol is known
func Currency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	number := groupThousands(intPart) + "." + frac

	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + number
	}
	if code == "" {
		return sign + number
	}
	return sign + code + " " + number
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date renders a calendar date for display. Zero times render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DateTime renders a timestamp for display. Zero times render empty.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}
