package domain

import "time"

// PeriodSelector identifica um período nomeado do dashboard.
type PeriodSelector string

const (
	PeriodAllTime   PeriodSelector = "all-time"
	PeriodThisMonth PeriodSelector = "this-month"
	PeriodLastMonth PeriodSelector = "last-month"
	PeriodThisYear  PeriodSelector = "this-year"
	PeriodLastYear  PeriodSelector = "last-year"
	PeriodCustom    PeriodSelector = "custom"
)

// Granularity determina qual base de custo recorrente é usada no cálculo de
// lucro líquido: períodos mensais comparam contra o custo mensal, períodos
// anuais (e all-time) contra o custo anual e períodos custom são rateados.
type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
	GranularityCustom  Granularity = "custom"
)

// CustomRange carrega os limites explícitos de um período custom. Qualquer um
// dos dois pode estar ausente: apenas From significa "daquela data até agora",
// apenas To significa "tudo até aquela data".
type CustomRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// ResolvedPeriod é o intervalo concreto de datas resolvido a partir de um
// seletor. From/To nulos significam ilimitado. To, quando presente, é
// inclusivo (último segundo do dia).
type ResolvedPeriod struct {
	From        *time.Time  `json:"from,omitempty"`
	To          *time.Time  `json:"to,omitempty"`
	Granularity Granularity `json:"granularity"`
}

// ResolvePeriod resolve um seletor nomeado relativo ao instante atual.
func ResolvePeriod(selector PeriodSelector, custom *CustomRange) *ResolvedPeriod {
	return ResolvePeriodAt(selector, custom, time.Now().UTC())
}

// ResolvePeriodAt resolve um seletor nomeado relativo a um instante de
// referência. Separado de ResolvePeriod para permitir testes com relógio fixo.
func ResolvePeriodAt(selector PeriodSelector, custom *CustomRange, now time.Time) *ResolvedPeriod {
	switch selector {
	case PeriodThisMonth:
		return monthPeriod(now.Year(), now.Month())

	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		previous := firstOfMonth.AddDate(0, -1, 0)
		return monthPeriod(previous.Year(), previous.Month())

	case PeriodThisYear:
		return yearPeriod(now.Year())

	case PeriodLastYear:
		return yearPeriod(now.Year() - 1)

	case PeriodCustom:
		period := &ResolvedPeriod{Granularity: GranularityCustom}
		if custom != nil {
			if custom.From != nil {
				from := startOfDay(*custom.From)
				period.From = &from
			}
			if custom.To != nil {
				to := endOfDay(*custom.To)
				period.To = &to
			}
		}
		return period

	default:
		// all-time e seletores desconhecidos caem no período ilimitado
		return &ResolvedPeriod{Granularity: GranularityYearly}
	}
}

// Contains verifica se uma data de ocorrência cai dentro do período.
func (p *ResolvedPeriod) Contains(t time.Time) bool {
	if p == nil {
		return true
	}
	if p.From != nil && t.Before(*p.From) {
		return false
	}
	if p.To != nil && t.After(*p.To) {
		return false
	}
	return true
}

// Previous deriva o período imediatamente anterior de mesma duração, usado
// como linha de base para as tendências. Sem limite inferior não existe linha
// de base: retorna nil e as métricas devem reportar "sem comparação" em vez de
// um 0% enganoso.
func (p *ResolvedPeriod) Previous(now time.Time) *ResolvedPeriod {
	if p == nil || p.From == nil {
		return nil
	}

	end := now
	if p.To != nil {
		end = *p.To
	}

	duration := end.Sub(*p.From)
	if duration < 0 {
		return nil
	}

	prevTo := p.From.Add(-time.Second)
	prevFrom := prevTo.Add(-duration)

	return &ResolvedPeriod{
		From:        &prevFrom,
		To:          &prevTo,
		Granularity: p.Granularity,
	}
}

// LengthDays retorna a duração do período em dias, usada no rateio de custos
// de períodos custom. Períodos sem limite inferior não têm duração definida.
func (p *ResolvedPeriod) LengthDays(now time.Time) float64 {
	if p == nil || p.From == nil {
		return 0
	}

	end := now
	if p.To != nil {
		// To é inclusivo até o último segundo do dia
		end = p.To.Add(time.Second)
	}

	return end.Sub(*p.From).Hours() / 24
}

func monthPeriod(year int, month time.Month) *ResolvedPeriod {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	return &ResolvedPeriod{From: &from, To: &to, Granularity: GranularityMonthly}
}

func yearPeriod(year int) *ResolvedPeriod {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return &ResolvedPeriod{From: &from, To: &to, Granularity: GranularityYearly}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
