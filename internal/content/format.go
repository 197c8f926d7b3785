package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	printer = message.NewPrinter(language.BritishEnglish)
	titler  = cases.Title(language.BritishEnglish)
)

// FormatPence formats an amount in pence as sterling. Whole pounds drop the
// pence: 125000 -> "£1,250", 4950 -> "£49.50".
func FormatPence(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	if pence%100 == 0 {
		return sign + "£" + printer.Sprint(number.Decimal(pence/100))
	}
	pounds := float64(pence) / 100
	return sign + "£" + printer.Sprint(number.Decimal(pounds, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// TitleFromSlug turns "self-assessment" into "Self Assessment".
func TitleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	return titler.String(strings.Join(words, " "))
}
