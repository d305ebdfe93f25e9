package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount in dollars with two decimal places. Stored
// totals are never rounded; only the display string is.
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%.2f", amount)
}
