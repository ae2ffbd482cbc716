package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats a dollar amount with thousands separators, e.g. $23,400.00
func Currency(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Score formats a benchmark value
func Score(v float64) string {
	return printer.Sprintf("%.1f", v)
}
