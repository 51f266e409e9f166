package city

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/pkg/dbmetrics"
	"github.com/agendaflow/scheduling-service/pkg/psqlbuilder"
)

var cityColumns = []string{
	"id",
	"tenant_id",
	"name",
	"state",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника городов (только чтение для ядра)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория городов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает город по ID в рамках тенанта
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCity(row)
	if err == sql.ErrNoRows {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan city: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает города тенанта.
// onlyActive=true отдаёт только предлагаемые для записи города.
func (r *Repository) List(ctx context.Context, tenantID string, onlyActive bool) ([]domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cities = append(cities, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCity(row rowScanner) (*domain.City, error) {
	var c domain.City
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.State,
		&c.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
