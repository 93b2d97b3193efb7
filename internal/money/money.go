package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is appended to every formatted amount.
const Currency = "₽"

// DefaultLocale is the display locale of the storefront.
var DefaultLocale = language.Russian

// Format renders amount in DefaultLocale, e.g. "1 200 ₽" or "12,5 ₽".
// Whole amounts carry no fraction digits.
func Format(amount float64) string {
	return FormatIn(DefaultLocale, amount)
}

// FormatIn renders amount using the grouping and decimal separators of tag.
func FormatIn(tag language.Tag, amount float64) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %s", number.Decimal(amount, number.MaxFractionDigits(2)), Currency)
}

// Total renders the cart footer line, e.g. "Итого: 440 ₽".
func Total(amount float64) string {
	return "Итого: " + Format(amount)
}
