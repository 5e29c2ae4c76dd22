package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Os registros vindos do backend hospedado têm tipagem frouxa: identificadores
// ora são strings, ora números, ora objetos; valores monetários chegam como
// número ou string; datas em mais de um formato. Este arquivo é a etapa
// explícita de normalização na borda — o agregador só enxerga structs típadas
// já saneadas.

// FlexID aceita identificadores malformados: string, número ou objeto com um
// campo "id".
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)

	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 {
			*f = ""
			return nil
		}
		var inner FlexID
		if err := inner.UnmarshalJSON(obj.ID); err != nil {
			return err
		}
		*f = inner

	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexID(n.String())
	}

	return nil
}

// FlexAmount aceita valores monetários como número, string numérica ou nulo.
// Qualquer coisa não interpretável vira 0 em vez de propagar erro.
type FlexAmount float64

func (f *FlexAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexAmount(SanitizeAmount(v))
	return nil
}

// FlexDate aceita datas como "2006-01-02" ou RFC3339. Datas não interpretáveis
// ficam zeradas e o registro simplesmente não cai em nenhum período.
type FlexDate time.Time

func (f *FlexDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = FlexDate(time.Time{})
		return nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*f = FlexDate(t.UTC())
			return nil
		}
	}

	*f = FlexDate(time.Time{})
	return nil
}

func (f FlexDate) Time() time.Time {
	return time.Time(f)
}

type RawInvoice struct {
	ID       FlexID     `json:"id"`
	Amount   FlexAmount `json:"amount"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"`
	IssuedAt FlexDate   `json:"date"`
}

type RawClient struct {
	ID              FlexID       `json:"id"`
	Name            string       `json:"name"`
	DefaultCurrency string       `json:"default_currency"`
	Invoices        []RawInvoice `json:"invoices"`
}

type RawProject struct {
	ID           FlexID     `json:"id"`
	ClientID     FlexID     `json:"client_id"`
	Name         string     `json:"name"`
	PricingModel string     `json:"pricing_model"`
	Price        FlexAmount `json:"price"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	CompletedAt  FlexDate   `json:"completed_at"`
}

type RawHourEntry struct {
	ID       FlexID     `json:"id"`
	ClientID FlexID     `json:"client_id"`
	Hours    FlexAmount `json:"hours"`
	WorkedAt FlexDate   `json:"date"`
}

type RawSubscription struct {
	ID           FlexID     `json:"id"`
	Name         string     `json:"name"`
	Price        FlexAmount `json:"price"`
	Seats        int        `json:"seats"`
	Currency     string     `json:"currency"`
	BillingCycle string     `json:"billing_cycle"`
	Status       string     `json:"status"`
	TotalPaid    FlexAmount `json:"total_paid"`
}

// RawCollections é o payload bruto aceito pelo endpoint de agregação ad-hoc.
type RawCollections struct {
	Clients       []RawClient       `json:"clients"`
	Projects      []RawProject      `json:"projects"`
	HourEntries   []RawHourEntry    `json:"hour_entries"`
	Subscriptions []RawSubscription `json:"subscriptions"`
}

func (r RawClient) Normalize() *Client {
	client := &Client{
		ID:              string(r.ID),
		Name:            strings.TrimSpace(r.Name),
		DefaultCurrency: normalizeCurrency(r.DefaultCurrency),
	}

	for _, raw := range r.Invoices {
		client.Invoices = append(client.Invoices, &Invoice{
			ID:       string(raw.ID),
			ClientID: client.ID,
			Amount:   float64(raw.Amount),
			Currency: normalizeCurrency(raw.Currency),
			Status:   InvoiceStatus(normalizeEnum(raw.Status)),
			IssuedAt: raw.IssuedAt.Time(),
		})
	}

	return client
}

func (r RawProject) Normalize() *Project {
	project := &Project{
		ID:           string(r.ID),
		ClientID:     string(r.ClientID),
		Name:         strings.TrimSpace(r.Name),
		PricingModel: PricingModel(normalizeEnum(r.PricingModel)),
		Price:        float64(r.Price),
		Currency:     normalizeCurrency(r.Currency),
		Status:       ProjectStatus(normalizeEnum(r.Status)),
	}

	if completedAt := r.CompletedAt.Time(); !completedAt.IsZero() {
		project.CompletedAt = &completedAt
	}

	return project
}

func (r RawHourEntry) Normalize() *HourEntry {
	return &HourEntry{
		ID:       string(r.ID),
		ClientID: string(r.ClientID),
		Hours:    float64(r.Hours),
		WorkedAt: r.WorkedAt.Time(),
	}
}

func (r RawSubscription) Normalize() *Subscription {
	seats := r.Seats
	if seats < 1 {
		seats = 1
	}

	cycle := BillingCycle(normalizeEnum(r.BillingCycle))
	if cycle != BillingCycleYearly {
		cycle = BillingCycleMonthly
	}

	return &Subscription{
		ID:           string(r.ID),
		Name:         strings.TrimSpace(r.Name),
		Price:        float64(r.Price),
		Seats:        seats,
		Currency:     normalizeCurrency(r.Currency),
		BillingCycle: cycle,
		Status:       SubscriptionStatus(normalizeEnum(r.Status)),
		TotalPaid:    float64(r.TotalPaid),
	}
}

// Normalize converte o payload bruto nas coleções tipadas do domínio.
func (r *RawCollections) Normalize() ([]*Client, []*Project, []*HourEntry, []*Subscription) {
	clients := make([]*Client, 0, len(r.Clients))
	for _, raw := range r.Clients {
		clients = append(clients, raw.Normalize())
	}

	projects := make([]*Project, 0, len(r.Projects))
	for _, raw := range r.Projects {
		projects = append(projects, raw.Normalize())
	}

	entries := make([]*HourEntry, 0, len(r.HourEntries))
	for _, raw := range r.HourEntries {
		entries = append(entries, raw.Normalize())
	}

	subscriptions := make([]*Subscription, 0, len(r.Subscriptions))
	for _, raw := range r.Subscriptions {
		subscriptions = append(subscriptions, raw.Normalize())
	}

	return clients, projects, entries, subscriptions
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
