package professionalcity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/pkg/dbmetrics"
	"github.com/agendaflow/scheduling-service/pkg/psqlbuilder"
)

var linkColumns = []string{
	"id",
	"tenant_id",
	"professional_id",
	"city_id",
	"created_at",
}

// Repository репозиторий связей профессионал-город.
// Таблица связей служит источником истины для доступности профессионалов по городам.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория связей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByTenant получает все связи тенанта.
// Используется для построения индекса доступности.
func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]domain.ProfessionalCityLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("professional_cities").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryLinks(ctx, executor, query, args)
}

// ListByProfessional получает связи конкретного профессионала
func (r *Repository) ListByProfessional(ctx context.Context, tenantID, professionalID string) ([]domain.ProfessionalCityLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(linkColumns...).
		From("professional_cities").
		Where(squirrel.Eq{"tenant_id": tenantID, "professional_id": professionalID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryLinks(ctx, executor, query, args)
}

// ReplaceForProfessional заменяет набор городов профессионала целиком:
// так работает диалог управления городами: старые связи удаляются,
// выбранные создаются заново. Вызывать внутри транзакции.
func (r *Repository) ReplaceForProfessional(ctx context.Context, tenantID, professionalID string, cityIDs []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_cities").
		Where(squirrel.Eq{"tenant_id": tenantID, "professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - execute delete: %v", ErrExecQuery, err)
	}

	if len(cityIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("professional_cities").
		Columns("id", "tenant_id", "professional_id", "city_id")
	for _, cityID := range cityIDs {
		insertBuilder = insertBuilder.Values(uuid.NewString(), tenantID, professionalID, cityID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) queryLinks(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}) ([]domain.ProfessionalCityLink, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryLinks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	links := make([]domain.ProfessionalCityLink, 0)
	for rows.Next() {
		var link domain.ProfessionalCityLink
		var createdAt sql.NullTime

		err := rows.Scan(
			&link.ID,
			&link.TenantID,
			&link.ProfessionalID,
			&link.CityID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: queryLinks - scan row: %v", ErrScanRow, err)
		}

		link.CreatedAt = createdAt.Time
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryLinks - rows error: %v", ErrScanRow, err)
	}

	return links, nil
}
