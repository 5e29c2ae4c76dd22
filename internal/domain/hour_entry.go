package domain

import "time"

// HourEntry é um lançamento de horas trabalhadas para um cliente. Horas não
// têm moeda e nunca passam pelo conversor.
type HourEntry struct {
	ID       string    `json:"id"`
	TenantID string    `json:"tenant_id"`
	ClientID string    `json:"client_id"`
	Hours    float64   `json:"hours"`
	WorkedAt time.Time `json:"worked_at"`
}
