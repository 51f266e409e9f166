package list_professional_cities

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
	List(ctx context.Context, tenantID string, onlyActive bool) ([]domain.City, error)
}

// LinkRepository интерфейс репозитория связей профессионал-город
type LinkRepository interface {
	ListByProfessional(ctx context.Context, tenantID, professionalID string) ([]domain.ProfessionalCityLink, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
