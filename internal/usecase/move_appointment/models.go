package move_appointment

import (
	"time"

	"github.com/agendaflow/scheduling-service/pkg/types"
)

// Request модель запроса на перемещение записи
type Request struct {
	TenantID       string           // ID тенанта
	AppointmentID  string           // ID перемещаемой записи
	ProfessionalID string           // ID целевого профессионала
	StartTime      types.TimeString // Целевой слот (например, "10:30")
}

// Response модель ответа с перемещённой записью
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

	Date      time.Time        // Календарный день (не меняется при перемещении)
	StartTime types.TimeString // Новое время начала
	Status    string
	Notes     string

	// Changed false, когда цель совпала с источником и запись не менялась
	Changed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
