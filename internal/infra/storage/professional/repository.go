package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/pkg/dbmetrics"
	"github.com/agendaflow/scheduling-service/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"tenant_id",
	"name",
	"email",
	"phone",
	"specialization",
	"status",
	"avatar_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника профессионалов.
// Ядро расписания использует его только на чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профессионала по ID в рамках тенанта
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanProfessional(row)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	return p, nil
}

// List получает профессионалов тенанта.
// onlyActive=true отдаёт только тех, кого можно ставить в расписание.
func (r *Repository) List(ctx context.Context, tenantID string, onlyActive bool) ([]domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ProfessionalActive})
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

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var p domain.Professional
	var email, phone, specialization sql.NullString
	var avatarURL sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&email,
		&phone,
		&specialization,
		&p.Status,
		&avatarURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Email = email.String
	p.Phone = phone.String
	p.Specialization = specialization.String
	if avatarURL.Valid {
		p.AvatarURL = &avatarURL.String
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
