package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/freelahub/agency-ops-api/infrastructure/database/postgres"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

const hourEntriesTable = "hour_entries h"

type HourEntryRepository interface {
	ListByTenant(tenantID string) ([]*domain.HourEntry, error)
}

type hourEntryRepository struct {
	conn *postgres.Connection
}

func NewHourEntryRepository(conn *postgres.Connection) HourEntryRepository {
	return &hourEntryRepository{
		conn: conn,
	}
}

// listHourEntriesSQL monta a consulta de lançamentos do tenant. As colunas
// espelham o schema criado pelo script de migração.
func listHourEntriesSQL(tenantID string) (string, []interface{}, error) {
	return squirrel.
		Select("h.id, h.tenant_id, h.client_id, h.hours, h.worked_at").
		From(hourEntriesTable).
		Where(squirrel.Eq{"h.tenant_id": tenantID}).
		OrderBy("h.worked_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *hourEntryRepository) ListByTenant(tenantID string) ([]*domain.HourEntry, error) {
	entriesSQL, entriesArgs, err := listHourEntriesSQL(tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entriesSQL, entriesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.HourEntry, 0)

	for rows.Next() {
		entry := &domain.HourEntry{}

		if err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.ClientID,
			&entry.Hours,
			&entry.WorkedAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
