package analyzing

import (
	"sort"
	"time"

	"github.com/freelahub/agency-ops-api/internal/domain"
	"github.com/freelahub/agency-ops-api/internal/usecases/converting"
	"github.com/freelahub/agency-ops-api/pkg/utils"
)

// averageMonthDays é o comprimento médio do mês usado no rateio de custos de
// períodos custom, evitando superestimar custos em janelas curtas e
// subestimá-los em janelas longas.
const averageMonthDays = 30.44

// AggregationInput reúne tudo que a agregação precisa. As coleções já chegam
// normalizadas; o agregador não busca nada sozinho.
type AggregationInput struct {
	Clients       []*domain.Client
	Projects      []*domain.Project
	HourEntries   []*domain.HourEntry
	Subscriptions []*domain.Subscription

	Period         *domain.ResolvedPeriod
	TargetCurrency string
	Rates          domain.RateTable

	// Now permite relógio fixo nos testes; zero usa time.Now
	Now time.Time
}

// Aggregate calcula o snapshot completo de métricas do dashboard. É uma
// computação síncrona sobre coleções já carregadas, recalculada por inteiro a
// cada chamada — o snapshot devolvido nunca é mutado depois.
func Aggregate(in AggregationInput) *domain.AnalyticsSnapshot {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	previous := in.Period.Previous(now)

	hours := sumHours(in.HourEntries, in.Period)
	revenue, revenueByClient := sumRevenue(in.Clients, in.Period, in.TargetCurrency, in.Rates)
	projectRevenue := sumProjectRevenue(in.Projects, in.Period, in.TargetCurrency, in.Rates)

	costMonthly, costYearly, totalPaid := sumSubscriptionCosts(in.Subscriptions, in.TargetCurrency, in.Rates)
	costBasis := costBasisForPeriod(in.Period, costMonthly, costYearly, now)
	netProfit := revenue - costBasis

	snapshot := &domain.AnalyticsSnapshot{
		Currency:    in.TargetCurrency,
		Period:      in.Period,
		GeneratedAt: now,
	}

	if id, err := utils.GenerateID(); err == nil {
		snapshot.ID = id
	}

	snapshot.HoursTotal = domain.MetricValue{
		Current:   hours,
		Formatted: utils.FormatHours(hours),
	}
	snapshot.RevenueTotal = domain.MetricValue{
		Current:   revenue,
		Formatted: utils.FormatMoney(revenue, in.TargetCurrency, true),
	}
	snapshot.ProjectRevenue = domain.MetricValue{
		Current:   projectRevenue,
		Formatted: utils.FormatMoney(projectRevenue, in.TargetCurrency, true),
	}
	snapshot.NetProfit = domain.MetricValue{
		Current:   netProfit,
		Formatted: utils.FormatMoney(netProfit, in.TargetCurrency, true),
	}

	// Custos de assinatura e total pago são figuras sem escopo de período;
	// comparação período a período seria sempre plana, então não têm tendência.
	snapshot.SubscriptionCostMonthly = domain.MetricValue{
		Current:   costMonthly,
		Formatted: utils.FormatMoney(costMonthly, in.TargetCurrency, true),
	}
	snapshot.SubscriptionCostYearly = domain.MetricValue{
		Current:   costYearly,
		Formatted: utils.FormatMoney(costYearly, in.TargetCurrency, true),
	}
	snapshot.TotalPaidToDate = domain.MetricValue{
		Current:   totalPaid,
		Formatted: utils.FormatMoney(totalPaid, in.TargetCurrency, true),
	}

	if previous != nil {
		prevHours := sumHours(in.HourEntries, previous)
		prevRevenue, _ := sumRevenue(in.Clients, previous, in.TargetCurrency, in.Rates)
		prevProjectRevenue := sumProjectRevenue(in.Projects, previous, in.TargetCurrency, in.Rates)
		// mesma duração implica a mesma base de custo
		prevNetProfit := prevRevenue - costBasis

		snapshot.HoursTotal.Previous = &prevHours
		snapshot.HoursTotal.Trend = domain.NewTrend(hours, prevHours)

		snapshot.RevenueTotal.Previous = &prevRevenue
		snapshot.RevenueTotal.Trend = domain.NewTrend(revenue, prevRevenue)

		snapshot.ProjectRevenue.Previous = &prevProjectRevenue
		snapshot.ProjectRevenue.Trend = domain.NewTrend(projectRevenue, prevProjectRevenue)

		snapshot.NetProfit.Previous = &prevNetProfit
		snapshot.NetProfit.Trend = domain.NewTrend(netProfit, prevNetProfit)
	}

	snapshot.HoursByClient = hoursBreakdown(in.HourEntries, in.Clients, in.Period)
	snapshot.RevenueByClient = revenueByClient

	return snapshot
}

// sumHours soma as horas lançadas dentro do período. Horas não têm moeda e
// nunca passam pelo conversor.
func sumHours(entries []*domain.HourEntry, period *domain.ResolvedPeriod) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.WorkedAt.IsZero() || !period.Contains(entry.WorkedAt) {
			continue
		}
		total += domain.SanitizeAmount(entry.Hours)
	}
	return total
}

// sumRevenue soma as faturas pagas dentro do período, convertendo cada uma da
// sua moeda registrada (ou da moeda padrão do cliente) para a moeda alvo.
// Devolve também a quebra por cliente, ordenada decrescente, sem contribuições
// zero.
func sumRevenue(clients []*domain.Client, period *domain.ResolvedPeriod, target string, rates domain.RateTable) (float64, []domain.BreakdownEntry) {
	total := 0.0
	byClient := make(map[string]float64, len(clients))
	names := make(map[string]string, len(clients))

	for _, client := range clients {
		names[client.ID] = client.Name

		for _, invoice := range client.Invoices {
			if !invoice.Paid() || invoice.IssuedAt.IsZero() || !period.Contains(invoice.IssuedAt) {
				continue
			}

			amount := converting.Convert(
				domain.SanitizeAmount(invoice.Amount),
				client.InvoiceCurrency(invoice),
				target,
				rates,
			)

			total += amount
			byClient[client.ID] += amount
		}
	}

	return total, sortedBreakdown(byClient, names)
}

// sumProjectRevenue soma projetos de preço fixo concluídos dentro do período.
func sumProjectRevenue(projects []*domain.Project, period *domain.ResolvedPeriod, target string, rates domain.RateTable) float64 {
	total := 0.0
	for _, project := range projects {
		if !project.CompletedFixedPrice() || !period.Contains(*project.CompletedAt) {
			continue
		}

		total += converting.Convert(domain.SanitizeAmount(project.Price), project.Currency, target, rates)
	}
	return total
}

// sumSubscriptionCosts calcula os custos normalizados das assinaturas ativas
// (preço × assentos convertido para a moeda alvo, anual dividido por 12 no
// mensal e mensal multiplicado por 12 no anual) e o total pago vitalício de
// todas as assinaturas, que por desenho ignora o filtro de período.
func sumSubscriptionCosts(subscriptions []*domain.Subscription, target string, rates domain.RateTable) (monthly, yearly, totalPaid float64) {
	for _, sub := range subscriptions {
		totalPaid += converting.Convert(domain.SanitizeAmount(sub.TotalPaid), sub.Currency, target, rates)

		if !sub.Active() {
			continue
		}

		seats := sub.Seats
		if seats < 1 {
			seats = 1
		}

		cost := converting.Convert(domain.SanitizeAmount(sub.Price)*float64(seats), sub.Currency, target, rates)

		if sub.BillingCycle == domain.BillingCycleYearly {
			monthly += cost / 12
			yearly += cost
		} else {
			monthly += cost
			yearly += cost * 12
		}
	}

	return monthly, yearly, totalPaid
}

// costBasisForPeriod escolhe a base de custo do lucro líquido conforme a
// granularidade: períodos mensais contra o custo mensal, anuais e all-time
// contra o anual, e custom rateando o custo mensal pela duração em dias sobre
// o mês médio.
func costBasisForPeriod(period *domain.ResolvedPeriod, costMonthly, costYearly float64, now time.Time) float64 {
	if period == nil {
		return costYearly
	}

	switch period.Granularity {
	case domain.GranularityMonthly:
		return costMonthly
	case domain.GranularityCustom:
		if period.From == nil {
			// custom sem limite inferior equivale a all-time
			return costYearly
		}
		return costMonthly * (period.LengthDays(now) / averageMonthDays)
	default:
		return costYearly
	}
}

// hoursBreakdown agrupa as horas do período por cliente.
func hoursBreakdown(entries []*domain.HourEntry, clients []*domain.Client, period *domain.ResolvedPeriod) []domain.BreakdownEntry {
	byClient := make(map[string]float64)
	names := make(map[string]string, len(clients))

	for _, client := range clients {
		names[client.ID] = client.Name
	}

	for _, entry := range entries {
		if entry.WorkedAt.IsZero() || !period.Contains(entry.WorkedAt) {
			continue
		}
		byClient[entry.ClientID] += domain.SanitizeAmount(entry.Hours)
	}

	return sortedBreakdown(byClient, names)
}

// sortedBreakdown monta a lista ordenada decrescente por valor, excluindo
// contribuições zero. A lista é completa: quem trunca para top-N é a camada de
// apresentação.
func sortedBreakdown(byClient map[string]float64, names map[string]string) []domain.BreakdownEntry {
	entries := make([]domain.BreakdownEntry, 0, len(byClient))

	for clientID, value := range byClient {
		if value <= 0 {
			continue
		}

		name, ok := names[clientID]
		if !ok || name == "" {
			name = clientID
		}

		entries = append(entries, domain.BreakdownEntry{
			ClientID:   clientID,
			ClientName: name,
			Value:      value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].ClientName < entries[j].ClientName
	})

	return entries
}
