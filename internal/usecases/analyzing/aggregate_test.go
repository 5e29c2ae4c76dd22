package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelahub/agency-ops-api/internal/domain"
)

// Tabela de câmbio fixa para os testes: 1 EUR = 1.10 USD, 1 BRL = 0.20 USD.
var testRates = domain.RateTable{
	"USD": {"USD": 1, "EUR": 1 / 1.10, "BRL": 5},
	"EUR": {"EUR": 1, "USD": 1.10, "BRL": 5.5},
	"BRL": {"BRL": 1, "USD": 0.20, "EUR": 1 / 5.5},
}

func TestAggregate_Revenue(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)
	issuedAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	clients := []*domain.Client{
		{
			ID:              "c1",
			Name:            "Acme",
			DefaultCurrency: "EUR",
			Invoices: []*domain.Invoice{
				{ID: "i1", ClientID: "c1", Amount: 100, Currency: "EUR", Status: domain.InvoiceStatusPaid, IssuedAt: issuedAt},
				{ID: "i2", ClientID: "c1", Amount: 50, Currency: "EUR", Status: domain.InvoiceStatusPending, IssuedAt: issuedAt},
				{ID: "i3", ClientID: "c1", Amount: 40, Currency: "", Status: domain.InvoiceStatusPaid, IssuedAt: issuedAt},
				{ID: "i4", ClientID: "c1", Amount: 999, Currency: "EUR", Status: domain.InvoiceStatusPaid, IssuedAt: issuedAt.AddDate(0, -2, 0)},
			},
		},
	}

	snapshot := Aggregate(AggregationInput{
		Clients:        clients,
		Period:         period,
		TargetCurrency: "USD",
		Rates:          testRates,
		Now:            now,
	})

	// Apenas faturas pagas do período: 100 EUR + 40 EUR (moeda padrão do
	// cliente) convertidas a 1.10
	assert.InDelta(t, 154, snapshot.RevenueTotal.Current, 1e-9)
	assert.Equal(t, "USD", snapshot.Currency)

	require.Len(t, snapshot.RevenueByClient, 1)
	assert.Equal(t, "Acme", snapshot.RevenueByClient[0].ClientName)
	assert.InDelta(t, 154, snapshot.RevenueByClient[0].Value, 1e-9)
}

func TestAggregate_SubscriptionCosts(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)

	subscriptions := []*domain.Subscription{
		{
			ID: "s1", Name: "Adobe", Price: 120, Seats: 2, Currency: "USD",
			BillingCycle: domain.BillingCycleYearly, Status: domain.SubscriptionStatusActive, TotalPaid: 480,
		},
		{
			ID: "s2", Name: "Figma", Price: 15, Seats: 4, Currency: "USD",
			BillingCycle: domain.BillingCycleMonthly, Status: domain.SubscriptionStatusActive, TotalPaid: 300,
		},
		{
			ID: "s3", Name: "Notion", Price: 10, Seats: 6, Currency: "USD",
			BillingCycle: domain.BillingCycleMonthly, Status: domain.SubscriptionStatusCancelled, TotalPaid: 540,
		},
	}

	snapshot := Aggregate(AggregationInput{
		Subscriptions:  subscriptions,
		Period:         period,
		TargetCurrency: "USD",
		Rates:          testRates,
		Now:            now,
	})

	// Anual 120×2 = 240/ano → 20/mês; mensal 15×4 = 60/mês. Cancelada fica fora.
	assert.InDelta(t, 80, snapshot.SubscriptionCostMonthly.Current, 1e-9)
	assert.InDelta(t, 960, snapshot.SubscriptionCostYearly.Current, 1e-9)

	// Total pago é vitalício e inclui assinaturas canceladas
	assert.InDelta(t, 1320, snapshot.TotalPaidToDate.Current, 1e-9)

	// Métricas sem escopo de período não carregam tendência
	assert.Nil(t, snapshot.SubscriptionCostMonthly.Trend)
	assert.Nil(t, snapshot.TotalPaidToDate.Trend)
}

func TestAggregate_Trends(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)

	t.Run("crescimento período a período", func(t *testing.T) {
		clients := []*domain.Client{
			{
				ID: "c1", Name: "Acme", DefaultCurrency: "USD",
				Invoices: []*domain.Invoice{
					{ID: "i1", ClientID: "c1", Amount: 150, Currency: "USD", Status: domain.InvoiceStatusPaid, IssuedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
					{ID: "i2", ClientID: "c1", Amount: 100, Currency: "USD", Status: domain.InvoiceStatusPaid, IssuedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
				},
			},
		}

		snapshot := Aggregate(AggregationInput{
			Clients:        clients,
			Period:         period,
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		require.NotNil(t, snapshot.RevenueTotal.Trend)
		assert.Equal(t, 50, snapshot.RevenueTotal.Trend.Percent)
		assert.True(t, snapshot.RevenueTotal.Trend.IsIncrease)
		require.NotNil(t, snapshot.RevenueTotal.Previous)
		assert.InDelta(t, 100, *snapshot.RevenueTotal.Previous, 1e-9)
	})

	t.Run("período anterior sem dados não gera tendência", func(t *testing.T) {
		clients := []*domain.Client{
			{
				ID: "c1", Name: "Acme", DefaultCurrency: "USD",
				Invoices: []*domain.Invoice{
					{ID: "i1", ClientID: "c1", Amount: 150, Currency: "USD", Status: domain.InvoiceStatusPaid, IssuedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
				},
			},
		}

		snapshot := Aggregate(AggregationInput{
			Clients:        clients,
			Period:         period,
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		assert.Nil(t, snapshot.RevenueTotal.Trend, "linha de base zero exibe 'sem comparação', não 0%")
		require.NotNil(t, snapshot.RevenueTotal.Previous)
		assert.Zero(t, *snapshot.RevenueTotal.Previous)
	})

	t.Run("período ilimitado não tem linha de base", func(t *testing.T) {
		snapshot := Aggregate(AggregationInput{
			Period:         domain.ResolvePeriodAt(domain.PeriodAllTime, nil, now),
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		assert.Nil(t, snapshot.RevenueTotal.Trend)
		assert.Nil(t, snapshot.RevenueTotal.Previous)
	})
}

func TestAggregate_NetProfit(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	clients := []*domain.Client{
		{
			ID: "c1", Name: "Acme", DefaultCurrency: "USD",
			Invoices: []*domain.Invoice{
				{ID: "i1", ClientID: "c1", Amount: 1000, Currency: "USD", Status: domain.InvoiceStatusPaid, IssuedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
			},
		},
	}

	subscriptions := []*domain.Subscription{
		{
			ID: "s1", Name: "Figma", Price: 100, Seats: 1, Currency: "USD",
			BillingCycle: domain.BillingCycleMonthly, Status: domain.SubscriptionStatusActive,
		},
	}

	t.Run("período mensal desconta o custo mensal", func(t *testing.T) {
		snapshot := Aggregate(AggregationInput{
			Clients:        clients,
			Subscriptions:  subscriptions,
			Period:         domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now),
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		assert.InDelta(t, 900, snapshot.NetProfit.Current, 1e-9)
	})

	t.Run("período anual desconta o custo anual", func(t *testing.T) {
		snapshot := Aggregate(AggregationInput{
			Clients:        clients,
			Subscriptions:  subscriptions,
			Period:         domain.ResolvePeriodAt(domain.PeriodThisYear, nil, now),
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		assert.InDelta(t, 1000-1200, snapshot.NetProfit.Current, 1e-9)
	})

	t.Run("período custom rateia o custo mensal pela duração", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		period := domain.ResolvePeriodAt(domain.PeriodCustom, &domain.CustomRange{From: &from, To: &to}, now)

		snapshot := Aggregate(AggregationInput{
			Clients:        clients,
			Subscriptions:  subscriptions,
			Period:         period,
			TargetCurrency: "USD",
			Rates:          testRates,
			Now:            now,
		})

		// 15 dias inclusivos sobre o mês médio de 30.44 dias
		expectedCost := 100 * (15.0 / 30.44)
		assert.InDelta(t, 1000-expectedCost, snapshot.NetProfit.Current, 1e-6)
	})
}

func TestAggregate_HoursAndBreakdowns(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)
	workedAt := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	clients := []*domain.Client{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Borealis"},
		{ID: "c3", Name: "Cedro"},
	}

	entries := []*domain.HourEntry{
		{ID: "h1", ClientID: "c1", Hours: 10, WorkedAt: workedAt},
		{ID: "h2", ClientID: "c2", Hours: 25, WorkedAt: workedAt},
		{ID: "h3", ClientID: "c1", Hours: 5, WorkedAt: workedAt},
		{ID: "h4", ClientID: "c3", Hours: 0, WorkedAt: workedAt},
		{ID: "h5", ClientID: "c2", Hours: 8, WorkedAt: workedAt.AddDate(0, -2, 0)},
	}

	snapshot := Aggregate(AggregationInput{
		Clients:        clients,
		HourEntries:    entries,
		Period:         period,
		TargetCurrency: "USD",
		Rates:          testRates,
		Now:            now,
	})

	assert.InDelta(t, 40, snapshot.HoursTotal.Current, 1e-9)

	// Quebra ordenada decrescente, contribuição zero excluída
	require.Len(t, snapshot.HoursByClient, 2)
	assert.Equal(t, "Borealis", snapshot.HoursByClient[0].ClientName)
	assert.InDelta(t, 25, snapshot.HoursByClient[0].Value, 1e-9)
	assert.Equal(t, "Acme", snapshot.HoursByClient[1].ClientName)
	assert.InDelta(t, 15, snapshot.HoursByClient[1].Value, 1e-9)
}

func TestAggregate_ProjectRevenue(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)
	completedAt := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfPeriod := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	projects := []*domain.Project{
		{ID: "p1", ClientID: "c1", PricingModel: domain.PricingModelFixed, Price: 5000, Currency: "USD", Status: domain.ProjectStatusCompleted, CompletedAt: &completedAt},
		{ID: "p2", ClientID: "c1", PricingModel: domain.PricingModelHourly, Price: 9000, Currency: "USD", Status: domain.ProjectStatusCompleted, CompletedAt: &completedAt},
		{ID: "p3", ClientID: "c1", PricingModel: domain.PricingModelFixed, Price: 3000, Currency: "USD", Status: domain.ProjectStatusActive},
		{ID: "p4", ClientID: "c1", PricingModel: domain.PricingModelFixed, Price: 2000, Currency: "USD", Status: domain.ProjectStatusCompleted, CompletedAt: &outOfPeriod},
	}

	snapshot := Aggregate(AggregationInput{
		Projects:       projects,
		Period:         period,
		TargetCurrency: "USD",
		Rates:          testRates,
		Now:            now,
	})

	// Somente preço fixo concluído dentro do período
	assert.InDelta(t, 5000, snapshot.ProjectRevenue.Current, 1e-9)
	// Receita de projetos é métrica própria, não entra na receita de faturas
	assert.Zero(t, snapshot.RevenueTotal.Current)
}

func TestAggregate_EndToEnd(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	period := domain.ResolvePeriodAt(domain.PeriodThisMonth, nil, now)

	rates := domain.RateTable{
		"EUR": {"EUR": 1, "USD": 1.08},
		"USD": {"USD": 1, "EUR": 1 / 1.08},
	}

	clients := []*domain.Client{
		{
			ID: "c1", Name: "Borealis", DefaultCurrency: "EUR",
			Invoices: []*domain.Invoice{
				{ID: "i1", ClientID: "c1", Amount: 100, Currency: "EUR", Status: domain.InvoiceStatusPaid, IssuedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
			},
		},
	}

	snapshot := Aggregate(AggregationInput{
		Clients:        clients,
		Period:         period,
		TargetCurrency: "USD",
		Rates:          rates,
		Now:            now,
	})

	assert.InDelta(t, 108, snapshot.RevenueTotal.Current, 1e-9)
	assert.Equal(t, "$108.00", snapshot.RevenueTotal.Formatted)
	require.Len(t, snapshot.RevenueByClient, 1)
	assert.Equal(t, "c1", snapshot.RevenueByClient[0].ClientID)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, now, snapshot.GeneratedAt)
}
