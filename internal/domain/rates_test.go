package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildCrossTable(t *testing.T) {
	table := BuildCrossTable("USD", map[string]float64{
		"EUR": 0.92,
		"GBP": 0.79,
		"BRL": 5.10,
	})

	t.Run("diagonal é sempre 1", func(t *testing.T) {
		for _, code := range table.Currencies() {
			rate, ok := table.Rate(code, code)
			assert.True(t, ok)
			assert.Equal(t, 1.0, rate)
		}
	})

	t.Run("base para destino vem direto da cotação", func(t *testing.T) {
		rate, ok := table.Rate("USD", "EUR")
		assert.True(t, ok)
		assert.Equal(t, 0.92, rate)
	})

	t.Run("destino para base é o recíproco", func(t *testing.T) {
		rate, ok := table.Rate("EUR", "USD")
		assert.True(t, ok)
		assert.InDelta(t, 1/0.92, rate, 1e-9)
	})

	t.Run("cruzamento deriva via moeda base", func(t *testing.T) {
		rate, ok := table.Rate("EUR", "BRL")
		assert.True(t, ok)
		assert.InDelta(t, 5.10/0.92, rate, 1e-9)
	})

	t.Run("cotação não positiva é descartada", func(t *testing.T) {
		partial := BuildCrossTable("USD", map[string]float64{"EUR": -1, "GBP": 0.79})
		_, ok := partial.Rate("USD", "EUR")
		assert.False(t, ok)
	})
}

func TestCachedRates_Fresh(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ttl := time.Hour
	table := BuildCrossTable("USD", map[string]float64{"EUR": 0.92})

	tests := []struct {
		name   string
		cached *CachedRates
		want   bool
	}{
		{
			name:   "dentro do TTL",
			cached: &CachedRates{Table: table, FetchedAt: now.Add(-30 * time.Minute)},
			want:   true,
		},
		{
			name:   "exatamente no TTL já expirou",
			cached: &CachedRates{Table: table, FetchedAt: now.Add(-time.Hour)},
			want:   false,
		},
		{
			name:   "cache nulo nunca está fresco",
			cached: nil,
			want:   false,
		},
		{
			name:   "cache sem tabela nunca está fresco",
			cached: &CachedRates{FetchedAt: now},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cached.Fresh(now, ttl))
		})
	}
}
