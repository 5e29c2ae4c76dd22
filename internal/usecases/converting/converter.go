// Package converting implementa a conversão pura de valores monetários entre
// moedas a partir de uma tabela de câmbio.
package converting

import (
	"math"

	"github.com/freelahub/agency-ops-api/internal/domain"
)

// Convert converte um valor da moeda de origem para a moeda de destino usando
// a tabela informada. A função é pura e determinística — sem estado escondido
// e sem efeitos colaterais.
//
// Política de degradação:
//   - valor não finito (NaN/Inf) retorna 0, para não envenenar somatórios;
//   - origem igual ao destino retorna o valor intacto, sem exigir entrada
//     própria na tabela;
//   - par de moedas ausente na tabela retorna o valor intacto (fail-open):
//     melhor exibir um número sem conversão do que zerar, já que isso em geral
//     indica moeda fora do conjunto suportado e não um erro;
//   - produto corrompido (NaN/Inf) retorna 0.
//
// Valores negativos são preservados: a conversão é linear e o saneamento de
// sinal acontece na normalização dos registros, não aqui.
func Convert(amount float64, from, to string, rates domain.RateTable) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}

	if from == to {
		return amount
	}

	rate, ok := rates.Rate(from, to)
	if !ok {
		return amount
	}

	converted := amount * rate
	if math.IsNaN(converted) || math.IsInf(converted, 0) {
		return 0
	}

	return converted
}
