package analyzing

import (
	"context"

	"github.com/freelahub/agency-ops-api/internal/domain"
)

// Analyzer é o ponto de entrada do motor de análise financeira.
type Analyzer interface {
	// DashboardAnalytics monta o snapshot do dashboard de um tenant buscando
	// as coleções nos repositórios.
	DashboardAnalytics(ctx context.Context, tenantID string, selector domain.PeriodSelector, custom *domain.CustomRange, targetCurrency string) (*domain.AnalyticsSnapshot, error)

	// AggregateRawCollections agrega coleções brutas fornecidas pelo chamador,
	// normalizando os registros de tipagem frouxa na borda.
	AggregateRawCollections(ctx context.Context, raw *domain.RawCollections, selector domain.PeriodSelector, custom *domain.CustomRange, targetCurrency string) (*domain.AnalyticsSnapshot, error)
}
