package move_appointment

import (
	"context"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Professional, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Service, error)
}

// CityRepository интерфейс репозитория городов
type CityRepository interface {
	List(ctx context.Context, tenantID string, onlyActive bool) ([]domain.City, error)
}

// LinkRepository интерфейс репозитория связей профессионал-город
type LinkRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]domain.ProfessionalCityLink, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
