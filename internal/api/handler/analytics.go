package handler

import (
	"encoding/json"
	"net/http"

	"github.com/freelahub/agency-ops-api/internal/domain"
	"github.com/freelahub/agency-ops-api/internal/usecases/analyzing"
	"github.com/freelahub/agency-ops-api/pkg/apiErrors"
	"github.com/freelahub/agency-ops-api/pkg/log"
	"github.com/freelahub/agency-ops-api/pkg/middleware"
	"github.com/freelahub/agency-ops-api/pkg/utils"
)

// GetDashboardAnalytics retorna o snapshot de métricas do tenant para o
// período selecionado.
// Query params: period (default this-month), from, to (YYYY-MM-DD, apenas
// para period=custom), currency.
func GetDashboardAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		selector, custom, err := parsePeriodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		currency := r.URL.Query().Get("currency")

		logger.WithFields(log.Fields{
			"tenant_id": claims.TenantID,
			"period":    selector,
			"currency":  currency,
		}).Info("analytics: montando snapshot do dashboard")

		snapshot, err := service.DashboardAnalytics(r.Context(), claims.TenantID, selector, custom, currency)
		if err != nil {
			logger.WithError(err).Error("analytics: erro ao montar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o snapshot de métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("analytics: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type aggregateRequest struct {
	domain.RawCollections
	Period   string `json:"period"`
	From     string `json:"from"`
	To       string `json:"to"`
	Currency string `json:"currency"`
}

// AggregateCollections agrega coleções brutas enviadas pelo chamador, sem
// tocar no banco. Os registros passam pela normalização de borda antes de
// chegar ao agregador.
func AggregateCollections(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req aggregateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		selector := domain.PeriodSelector(req.Period)
		if selector == "" {
			selector = domain.PeriodAllTime
		}

		custom, err := customRange(req.From, req.To)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		snapshot, err := service.AggregateRawCollections(r.Context(), &req.RawCollections, selector, custom, req.Currency)
		if err != nil {
			logger.WithError(err).Error("analytics: erro na agregação ad-hoc")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na agregação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"clients":       len(req.Clients),
			"subscriptions": len(req.Subscriptions),
			"period":        selector,
		}).Info("analytics: agregação ad-hoc concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("analytics: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func parsePeriodParams(r *http.Request) (domain.PeriodSelector, *domain.CustomRange, error) {
	selector := domain.PeriodSelector(r.URL.Query().Get("period"))
	if selector == "" {
		selector = domain.PeriodThisMonth
	}

	custom, err := customRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		return "", nil, err
	}

	return selector, custom, nil
}

func customRange(fromStr, toStr string) (*domain.CustomRange, error) {
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := utils.ParseDate(toStr)
	if err != nil {
		return nil, err
	}

	if from == nil && to == nil {
		return nil, nil
	}

	return &domain.CustomRange{From: from, To: to}, nil
}
