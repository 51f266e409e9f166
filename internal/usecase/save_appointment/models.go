package save_appointment

import (
	"time"

	"github.com/agendaflow/scheduling-service/pkg/types"
)

// Request модель запроса на сохранение записи из формы.
// Пустой AppointmentID означает создание, непустой означает обновление.
type Request struct {
	TenantID      string
	AppointmentID string

	ClientID   string
	ClientName string // имя клиента приходит из формы

	ProfessionalID string
	ServiceID      string
	CityID         string

	Date      time.Time        // Календарный день записи
	StartTime types.TimeString // Слот сетки (например, "14:30")

	Status string // Пустой статус означает confirmed
	Notes  string
}

// Response модель ответа с сохранённой записью
type Response struct {
	ID string

	ClientID   string
	ClientName string

	ProfessionalID   string
	ProfessionalName string

	ServiceID   string
	ServiceName string

	CityID   string
	CityName string

	Date      time.Time
	StartTime types.TimeString
	Status    string
	Notes     string

	// Created true при создании новой записи, false при обновлении
	Created bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
