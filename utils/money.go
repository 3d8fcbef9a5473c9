package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatKES renders a whole-shilling amount with comma grouping, e.g.
// 5003000 -> "5,003,000".
func FormatKES(amount int) string {
	return printer.Sprintf("%d", amount)
}
