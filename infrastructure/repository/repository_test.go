package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// As consultas dos repositórios precisam referenciar exatamente as colunas que
// o script de migração cria; um rename de um lado sem o outro quebra o
// dashboard inteiro com erro de coluna inexistente.
func TestListQueriesMatchMigrationSchema(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (string, []interface{}, error)
		wantSQL string
	}{
		{
			name:    "clientes",
			build:   func() (string, []interface{}, error) { return listClientsSQL("tenant-demo") },
			wantSQL: "SELECT c.id, c.tenant_id, c.name, c.default_currency FROM clients c WHERE c.tenant_id = $1 ORDER BY c.name ASC",
		},
		{
			name:    "faturas",
			build:   func() (string, []interface{}, error) { return listInvoicesSQL([]string{"c1", "c2"}) },
			wantSQL: "SELECT i.id, i.client_id, i.amount, i.currency, i.status, i.issued_at FROM invoices i WHERE i.client_id = ANY($1) ORDER BY i.issued_at ASC",
		},
		{
			name:    "projetos",
			build:   func() (string, []interface{}, error) { return listProjectsSQL("tenant-demo") },
			wantSQL: "SELECT p.id, p.tenant_id, p.client_id, p.name, p.pricing_model, p.price, p.currency, p.status, p.completed_at FROM projects p WHERE p.tenant_id = $1 ORDER BY p.name ASC",
		},
		{
			name:    "lançamentos de horas",
			build:   func() (string, []interface{}, error) { return listHourEntriesSQL("tenant-demo") },
			wantSQL: "SELECT h.id, h.tenant_id, h.client_id, h.hours, h.worked_at FROM hour_entries h WHERE h.tenant_id = $1 ORDER BY h.worked_at ASC",
		},
		{
			name:    "assinaturas",
			build:   func() (string, []interface{}, error) { return listSubscriptionsSQL("tenant-demo") },
			wantSQL: "SELECT s.id, s.tenant_id, s.name, s.price, s.seats, s.currency, s.billing_cycle, s.status, s.total_paid FROM subscriptions s WHERE s.tenant_id = $1 ORDER BY s.name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, gotSQL)
			assert.NotEmpty(t, args)
		})
	}
}
