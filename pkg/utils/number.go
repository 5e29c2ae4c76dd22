package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Usado apenas
// na formatação de exibição; os somatórios da agregação nunca passam por aqui.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
