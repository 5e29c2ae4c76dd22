package domain

import "math"

// SanitizeAmount normaliza valores numéricos vindos de registros externos com
// tipagem frouxa. NaN, infinitos e negativos viram 0 na borda para que um
// único valor corrompido não envenene todos os somatórios do dashboard.
func SanitizeAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
