package domain

import "time"

type PricingModel string

const (
	PricingModelFixed  PricingModel = "fixed"
	PricingModelHourly PricingModel = "hourly"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project é um projeto do tenant. Projetos de preço fixo concluídos são uma
// fonte de receita própria, reportada separadamente da receita de faturas.
type Project struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	ClientID     string        `json:"client_id"`
	Name         string        `json:"name"`
	PricingModel PricingModel  `json:"pricing_model"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Status       ProjectStatus `json:"status"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

// CompletedFixedPrice indica se o projeto conta como receita de preço fixo.
func (p *Project) CompletedFixedPrice() bool {
	return p.Status == ProjectStatusCompleted && p.PricingModel == PricingModelFixed && p.CompletedAt != nil
}
