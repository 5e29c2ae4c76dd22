package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/freelahub/agency-ops-api/infrastructure/database/postgres"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

const subscriptionsTable = "subscriptions s"

type SubscriptionRepository interface {
	ListByTenant(tenantID string) ([]*domain.Subscription, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

// listSubscriptionsSQL monta a consulta de assinaturas do tenant. As colunas
// espelham o schema criado pelo script de migração.
func listSubscriptionsSQL(tenantID string) (string, []interface{}, error) {
	return squirrel.
		Select("s.id, s.tenant_id, s.name, s.price, s.seats, s.currency, s.billing_cycle, s.status, s.total_paid").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.tenant_id": tenantID}).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *subscriptionRepository) ListByTenant(tenantID string) ([]*domain.Subscription, error) {
	subsSQL, subsArgs, err := listSubscriptionsSQL(tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(subsSQL, subsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscriptions := make([]*domain.Subscription, 0)

	for rows.Next() {
		sub := &domain.Subscription{}

		if err := rows.Scan(
			&sub.ID,
			&sub.TenantID,
			&sub.Name,
			&sub.Price,
			&sub.Seats,
			&sub.Currency,
			&sub.BillingCycle,
			&sub.Status,
			&sub.TotalPaid,
		); err != nil {
			return nil, err
		}

		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, rows.Err()
}
