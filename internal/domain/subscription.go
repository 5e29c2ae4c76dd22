package domain

type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription é uma assinatura de ferramenta/serviço da agência. TotalPaid é
// o acumulado vitalício informado pela origem, independente de período.
type Subscription struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenant_id"`
	Name         string             `json:"name"`
	Price        float64            `json:"price"`
	Seats        int                `json:"seats"`
	Currency     string             `json:"currency"`
	BillingCycle BillingCycle       `json:"billing_cycle"`
	Status       SubscriptionStatus `json:"status"`
	TotalPaid    float64            `json:"total_paid"`
}

func (s *Subscription) Active() bool {
	return s.Status == SubscriptionStatusActive
}
