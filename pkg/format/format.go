// Package format holds pure display formatting helpers (pt-BR). No state.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a value as Brazilian Reais: 1234.5 -> "R$ 1.234,50".
func Currency(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date renders a date as dd/mm/yyyy. Zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// DateTime renders a timestamp as dd/mm/yyyy hh:mm:ss. Zero time renders empty.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04:05")
}

// ID zero-pads a numeric identifier to the 4-digit display form used on
// budget numbers: 7 -> "0007".
func ID(id int) string {
	return fmt.Sprintf("%04d", id)
}
