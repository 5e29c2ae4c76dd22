package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice é uma fatura emitida para um cliente. Somente faturas pagas entram
// na receita; pendentes e vencidas nunca contribuem.
type Invoice struct {
	ID       string        `json:"id"`
	ClientID string        `json:"client_id"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Status   InvoiceStatus `json:"status"`
	IssuedAt time.Time     `json:"issued_at"`
}

func (i *Invoice) Paid() bool {
	return i.Status == InvoiceStatusPaid
}

// Client é um cliente do tenant com suas faturas carregadas.
type Client struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id"`
	Name            string     `json:"name"`
	DefaultCurrency string     `json:"default_currency"`
	Invoices        []*Invoice `json:"invoices,omitempty"`
}

// InvoiceCurrency resolve a moeda de uma fatura: quando a fatura não registra
// moeda própria, vale a moeda padrão do cliente.
func (c *Client) InvoiceCurrency(i *Invoice) string {
	if i.Currency != "" {
		return i.Currency
	}
	return c.DefaultCurrency
}
