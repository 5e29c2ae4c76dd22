package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/freelahub/agency-ops-api/infrastructure/database/postgres"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

const projectsTable = "projects p"

type ProjectRepository interface {
	ListByTenant(tenantID string) ([]*domain.Project, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

// listProjectsSQL monta a consulta de projetos do tenant. As colunas espelham
// o schema criado pelo script de migração; price é a única coluna de preço e
// vale como preço fechado nos projetos de preço fixo.
func listProjectsSQL(tenantID string) (string, []interface{}, error) {
	return squirrel.
		Select("p.id, p.tenant_id, p.client_id, p.name, p.pricing_model, p.price, p.currency, p.status, p.completed_at").
		From(projectsTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *projectRepository) ListByTenant(tenantID string) ([]*domain.Project, error) {
	projectsSQL, projectsArgs, err := listProjectsSQL(tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(projectsSQL, projectsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)

	for rows.Next() {
		project := &domain.Project{}
		var currency sql.NullString
		var completedAt sql.NullTime

		if err := rows.Scan(
			&project.ID,
			&project.TenantID,
			&project.ClientID,
			&project.Name,
			&project.PricingModel,
			&project.Price,
			&currency,
			&project.Status,
			&completedAt,
		); err != nil {
			return nil, err
		}

		// bases antigas podem ter moeda nula; a conversão degrada sem ela
		if currency.Valid {
			project.Currency = currency.String
		}

		if completedAt.Valid {
			project.CompletedAt = &completedAt.Time
		}

		projects = append(projects, project)
	}

	return projects, rows.Err()
}
