package update_professional_cities

import (
	"context"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Professional, error)
}

// CityRepository интерфейс репозитория городов
type CityRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.City, error)
}

// LinkRepository интерфейс репозитория связей профессионал-город
type LinkRepository interface {
	ListByProfessional(ctx context.Context, tenantID, professionalID string) ([]domain.ProfessionalCityLink, error)
	ReplaceForProfessional(ctx context.Context, tenantID, professionalID string, cityIDs []string) error
}

// TransactionManager интерфейс для выполнения операций в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
