package handler

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a balance with thousands separators for display
// fields, e.g. 1234567.8 becomes "$1,234,567.80".
func FormatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%.2f", v)
}
