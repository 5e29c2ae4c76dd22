// Package ratestore define a fronteira de persistência do cache de câmbio:
// um armazenamento durável chave-valor com semântica simples de get/set. O
// motor de análise só depende desta interface, o que deixa a lógica de
// expiração testável com relógio e armazenamento falsos.
package ratestore

import "context"

// Chaves usadas pelo provedor de câmbio
const (
	KeyRatesTable     = "rates:table"
	KeyRatesFetchedAt = "rates:fetched_at"
)

type Store interface {
	// Get retorna o valor da chave e um indicador de existência. Ausência de
	// chave não é erro.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
