package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		currency   string
		abbreviate bool
		want       string
	}{
		{name: "dólar sem abreviação", value: 108, currency: "USD", want: "$108.00"},
		{name: "euro com centavos", value: 99.555, currency: "EUR", want: "€99.56"},
		{name: "real brasileiro", value: 1234.5, currency: "BRL", want: "R$1234.50"},
		{name: "milhares abreviados", value: 1234.5, currency: "USD", abbreviate: true, want: "$1.2k"},
		{name: "milhar exato sem zero residual", value: 1000, currency: "USD", abbreviate: true, want: "$1k"},
		{name: "milhões abreviados", value: 3_400_000, currency: "USD", abbreviate: true, want: "$3.4M"},
		{name: "negativo carrega o sinal antes do símbolo", value: -500.25, currency: "USD", want: "-$500.25"},
		{name: "moeda sem símbolo usa o código", value: 10, currency: "JPY", want: "JPY 10.00"},
		{name: "NaN exibe zero", value: math.NaN(), currency: "USD", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.value, tt.currency, tt.abbreviate))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "40h", FormatHours(40))
	assert.Equal(t, "12.5h", FormatHours(12.5))
	assert.Equal(t, "0h", FormatHours(0))
}
