package models

import (
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение записей за день
type ListAppointmentsRequest struct {
	TenantID       string
	Date           time.Time
	ProfessionalID *string
	CityID         *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentFilter {
	return domain.AppointmentFilter{
		TenantID:       r.TenantID,
		Date:           r.Date,
		ProfessionalID: r.ProfessionalID,
		CityID:         r.CityID,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID string `json:"id"`

	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`

	ProfessionalID   string `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`

	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`

	CityID   string `json:"cityId"`
	CityName string `json:"cityName"`

	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		ProfessionalID:   a.ProfessionalID,
		ProfessionalName: a.ProfessionalName,
		ServiceID:        a.ServiceID,
		ServiceName:      a.ServiceName,
		CityID:           a.CityID,
		CityName:         a.CityName,
		Date:             a.Date.Format(domain.DateFormat),
		StartTime:        a.Date.Format(domain.TimeFormat),
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	responses := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		responses = append(responses, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: responses}
}
