package domain

import (
	"math"
	"time"
)

// Trend é a variação percentual de uma métrica entre o período atual e o
// período anterior de mesma duração.
type Trend struct {
	Percent    int  `json:"percent"`
	IsIncrease bool `json:"is_increase"`
}

// NewTrend calcula a tendência entre dois valores. Retorna nil quando não há
// linha de base utilizável (anterior ausente, zero ou negativo), estado que a
// apresentação deve exibir como "sem comparação" e não como 0%.
func NewTrend(current, previous float64) *Trend {
	if previous <= 0 || math.IsNaN(previous) || math.IsNaN(current) {
		return nil
	}

	percent := int(math.Round(((current - previous) / previous) * 100))

	return &Trend{
		Percent:    percent,
		IsIncrease: percent > 0,
	}
}

// MetricValue é o valor de uma métrica do snapshot: valor atual, valor do
// período anterior (quando existe linha de base), tendência e a string
// pré-formatada para exibição. O valor bruto nunca é arredondado no meio da
// agregação, apenas na formatação.
type MetricValue struct {
	Current   float64  `json:"current"`
	Previous  *float64 `json:"previous,omitempty"`
	Trend     *Trend   `json:"trend,omitempty"`
	Formatted string   `json:"formatted"`
}

// BreakdownEntry é a contribuição de um cliente para uma métrica. Clientes com
// contribuição zero não entram nas listas.
type BreakdownEntry struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Value      float64 `json:"value"`
}

// AnalyticsSnapshot é a saída do agregador. É recalculado a cada chamada e os
// consumidores devem tratá-lo como imutável.
type AnalyticsSnapshot struct {
	ID       string          `json:"id"`
	Currency string          `json:"currency"`
	Period   *ResolvedPeriod `json:"period"`

	HoursTotal              MetricValue `json:"hours_total"`
	RevenueTotal            MetricValue `json:"revenue_total"`
	ProjectRevenue          MetricValue `json:"project_revenue"`
	SubscriptionCostMonthly MetricValue `json:"subscription_cost_monthly"`
	SubscriptionCostYearly  MetricValue `json:"subscription_cost_yearly"`
	TotalPaidToDate         MetricValue `json:"total_paid_to_date"`
	NetProfit               MetricValue `json:"net_profit"`

	HoursByClient   []BreakdownEntry `json:"hours_by_client"`
	RevenueByClient []BreakdownEntry `json:"revenue_by_client"`

	GeneratedAt time.Time `json:"generated_at"`
}
