package appointments

import (
	"context"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
