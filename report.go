package bgremove

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with comma thousands separators, e.g. 1,234,567.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}
