package domain

import "time"

// RateTable representa a matriz de conversão entre moedas:
// rates[origem][destino] = multiplicador ("1 unidade de origem = N unidades de destino").
// A tabela é sempre substituída por inteiro a cada busca bem-sucedida, nunca
// mutada parcialmente.
type RateTable map[string]map[string]float64

// Rate retorna o multiplicador de conversão entre duas moedas, se existir.
func (t RateTable) Rate(from, to string) (float64, bool) {
	row, ok := t[from]
	if !ok {
		return 0, false
	}

	rate, ok := row[to]
	return rate, ok
}

// Currencies retorna as moedas presentes na tabela.
func (t RateTable) Currencies() []string {
	currencies := make([]string, 0, len(t))
	for code := range t {
		currencies = append(currencies, code)
	}
	return currencies
}

// CachedRates é a última tabela de câmbio obtida com sucesso junto com o
// momento da busca. Entre buscas é somente leitura; quando expira é apenas
// ignorada (não removida do armazenamento).
type CachedRates struct {
	Table     RateTable `json:"table"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fresh indica se a tabela em cache ainda está dentro do TTL configurado.
func (c *CachedRates) Fresh(now time.Time, ttl time.Duration) bool {
	if c == nil || c.Table == nil {
		return false
	}
	return now.Sub(c.FetchedAt) < ttl
}

// BuildCrossTable deriva a matriz completa de conversão a partir das cotações
// base→X do feed: base→X vem direto da cotação, X→base é o recíproco e
// X→Y = (base→Y) / (base→X). Garante rate[X][X] == 1 para toda moeda presente.
func BuildCrossTable(base string, quotes map[string]float64) RateTable {
	all := make(map[string]float64, len(quotes)+1)
	all[base] = 1

	for code, rate := range quotes {
		if rate > 0 {
			all[code] = rate
		}
	}

	table := make(RateTable, len(all))
	for from, fromRate := range all {
		row := make(map[string]float64, len(all))
		for to, toRate := range all {
			if from == to {
				row[to] = 1
				continue
			}
			row[to] = toRate / fromRate
		}
		table[from] = row
	}

	return table
}
