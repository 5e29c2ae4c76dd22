package utils

import (
	"fmt"
	"math"
	"strings"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
}

// FormatMoney formata um valor monetário para exibição. O arredondamento
// acontece somente aqui, nunca no meio da agregação. Com abbreviate ativo,
// valores a partir de 1000 são abreviados (1.2k, 3.4M).
func FormatMoney(value float64, currency string, abbreviate bool) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	negative := value < 0
	abs := math.Abs(value)

	var formatted string
	switch {
	case abbreviate && abs >= 1_000_000:
		formatted = trimTrailingZero(fmt.Sprintf("%.1f", abs/1_000_000)) + "M"
	case abbreviate && abs >= 1_000:
		formatted = trimTrailingZero(fmt.Sprintf("%.1f", abs/1_000)) + "k"
	default:
		formatted = fmt.Sprintf("%.2f", RoundWithTwoDecimalPlace(abs))
	}

	if negative {
		return "-" + symbol + formatted
	}

	return symbol + formatted
}

// FormatHours formata um total de horas para exibição.
func FormatHours(hours float64) string {
	return trimTrailingZero(fmt.Sprintf("%.1f", RoundWithTwoDecimalPlace(hours))) + "h"
}

func trimTrailingZero(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
