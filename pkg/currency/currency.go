// Package currency formats rupee amounts the way Indian customers read them.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const SymbolINR = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders whole rupees with Indian digit grouping: 150000 becomes
// "₹1,50,000".
func FormatINR(amount int64) string {
	return printer.Sprintf("%s%d", SymbolINR, amount)
}

// FormatNumber is FormatINR without the symbol.
func FormatNumber(amount int64) string {
	return printer.Sprintf("%d", amount)
}
