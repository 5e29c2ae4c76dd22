package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/freelahub/agency-ops-api/infrastructure/database/postgres"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

const (
	clientsTable  = "clients c"
	invoicesTable = "invoices i"
)

type ClientRepository interface {
	// ListByTenant retorna os clientes do tenant com as faturas carregadas.
	ListByTenant(tenantID string) ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

// listClientsSQL monta a consulta de clientes do tenant. As colunas espelham
// o schema criado pelo script de migração.
func listClientsSQL(tenantID string) (string, []interface{}, error) {
	return squirrel.
		Select("c.id, c.tenant_id, c.name, c.default_currency").
		From(clientsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *clientRepository) ListByTenant(tenantID string) ([]*domain.Client, error) {
	clientsSQL, clientsArgs, err := listClientsSQL(tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	clientIDs := make([]string, 0)
	byID := make(map[string]*domain.Client)

	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(&client.ID, &client.TenantID, &client.Name, &client.DefaultCurrency); err != nil {
			return nil, err
		}

		clients = append(clients, client)
		clientIDs = append(clientIDs, client.ID)
		byID[client.ID] = client
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(clientIDs) == 0 {
		return clients, nil
	}

	if err := r.attachInvoices(clientIDs, byID); err != nil {
		return nil, err
	}

	return clients, nil
}

func listInvoicesSQL(clientIDs []string) (string, []interface{}, error) {
	return squirrel.
		Select("i.id, i.client_id, i.amount, i.currency, i.status, i.issued_at").
		From(invoicesTable).
		Where("i.client_id = ANY(?)", pq.Array(clientIDs)).
		OrderBy("i.issued_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *clientRepository) attachInvoices(clientIDs []string, byID map[string]*domain.Client) error {
	invoicesSQL, invoicesArgs, err := listInvoicesSQL(clientIDs)
	if err != nil {
		return err
	}

	rows, err := r.conn.Query(invoicesSQL, invoicesArgs...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		invoice := &domain.Invoice{}
		var currency sql.NullString

		if err := rows.Scan(
			&invoice.ID,
			&invoice.ClientID,
			&invoice.Amount,
			&currency,
			&invoice.Status,
			&invoice.IssuedAt,
		); err != nil {
			return err
		}

		// moeda nula na fatura cai na moeda padrão do cliente na agregação
		if currency.Valid {
			invoice.Currency = currency.String
		}

		if client, ok := byID[invoice.ClientID]; ok {
			client.Invoices = append(client.Invoices, invoice)
		}
	}

	return rows.Err()
}
