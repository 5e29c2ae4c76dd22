package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer"
	"github.com/freelahub/agency-ops-api/internal/domain"
	"github.com/freelahub/agency-ops-api/pkg/log"
)

type ratesResponse struct {
	Table     domain.RateTable `json:"table"`
	FetchedAt *time.Time       `json:"fetched_at,omitempty"`
}

// GetRates retorna a melhor tabela de câmbio disponível no momento junto com
// o instante da última busca bem-sucedida. A chamada nunca falha: na pior
// hipótese a tabela retornada é o fallback estático, sem fetched_at.
func GetRates(service currencylayer.RatesIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response := ratesResponse{
			Table:     service.GetRates(r.Context()),
			FetchedAt: service.LastFetchedAt(r.Context()),
		}

		logger.WithFields(log.Fields{
			"currencies": len(response.Table),
		}).Info("rates: tabela de câmbio retornada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("rates: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
