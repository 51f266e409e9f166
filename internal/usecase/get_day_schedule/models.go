package get_day_schedule

import (
	"time"

	"github.com/agendaflow/scheduling-service/pkg/types"
)

// Состояния ячейки дневной доски
const (
	CellAppointment = "appointment" // в слоте начинается запись
	CellShadow      = "shadow"      // слот занят хвостом более длинной услуги
	CellFree        = "free"
)

// Request модель запроса дневного расписания.
// Нулевая дата означает сегодняшний день.
type Request struct {
	TenantID       string
	Date           time.Time
	ProfessionalID *string // фильтр по профессионалу (опционально)
	CityID         *string // фильтр по городу (опционально)
}

// Response дневная доска: сетка слотов и колонка на каждого профессионала
type Response struct {
	Date  string             `json:"date"` // "2025-10-15"
	Slots []types.TimeString `json:"slots"`

	Columns []ProfessionalColumn `json:"columns"`
}

// ProfessionalColumn колонка доски одного профессионала
type ProfessionalColumn struct {
	ProfessionalID   string  `json:"professionalId"`
	ProfessionalName string  `json:"professionalName"`
	Specialization   string  `json:"specialization,omitempty"`
	AvatarURL        *string `json:"avatarUrl,omitempty"`

	Cells []Cell `json:"cells"`
}

// Cell одна ячейка колонки: слот и его состояние
type Cell struct {
	Time  types.TimeString `json:"time"`
	State string           `json:"state"`

	// Appointment заполнен только для состояния appointment
	Appointment *AppointmentCell `json:"appointment,omitempty"`
}

// AppointmentCell данные записи, стартующей в ячейке
type AppointmentCell struct {
	ID              string `json:"id"`
	ClientName      string `json:"clientName"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	CityID          string `json:"cityId"`
	CityName        string `json:"cityName"`
	Status          string `json:"status"`
	DurationMinutes int    `json:"durationMinutes"`
	Notes           string `json:"notes,omitempty"`
}
