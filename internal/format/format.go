// Package format renders prices and dates for the Spanish (Colombia) site copy.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	locale  = language.MustParse("es-CO")
	printer = message.NewPrinter(locale)
)

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Price formats a peso amount with es-CO digit grouping and no decimals.
// Example: Price(12000) => "$12.000"
func Price(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0"
	}
	rounded := math.Round(amount)
	s := printer.Sprint(number.Decimal(math.Abs(rounded), number.MaxFractionDigits(0)))
	if rounded < 0 {
		return "-$" + s
	}
	return "$" + s
}

// Date formats t as "15 de diciembre de 2025".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
