package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Mexican-Spanish storefront by default; the printer only shapes the
// displayed string, stored amounts stay integer cents.
var moneyPrinter = message.NewPrinter(language.MustParse("es-MX"))

// MoneyFromCents renders an amount in minor units as a display string,
// e.g. 123450 MXN -> "$1,234.50".
func MoneyFromCents(cents int, currency string) string {
	major := float64(cents) / 100.0
	n := number.Decimal(major, number.MinFractionDigits(2), number.MaxFractionDigits(2))
	return moneyPrinter.Sprintf("%s%v", currencySymbol(currency), n)
}

func currencySymbol(code string) string {
	switch code {
	case "MXN", "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
