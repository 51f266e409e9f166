package update_appointment

import (
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
	saveAppointment "github.com/agendaflow/scheduling-service/internal/usecase/save_appointment"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	ClientID       string `json:"clientId"`
	ClientName     string `json:"clientName"`
	ProfessionalID string `json:"professionalId"`
	ServiceID      string `json:"serviceId"`
	CityID         string `json:"cityId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	Status         string `json:"status,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               string `json:"id"`
	ClientID         string `json:"clientId"`
	ClientName       string `json:"clientName"`
	ProfessionalID   string `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	ServiceID        string `json:"serviceId"`
	ServiceName      string `json:"serviceName"`
	CityID           string `json:"cityId"`
	CityName         string `json:"cityName"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(tenantID, appointmentID string) (*saveAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &saveAppointment.Request{
		TenantID:       tenantID,
		AppointmentID:  appointmentID,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		CityID:         r.CityID,
		Date:           date,
		StartTime:      startTime,
		Status:         r.Status,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		ClientID:         resp.ClientID,
		ClientName:       resp.ClientName,
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		ServiceID:        resp.ServiceID,
		ServiceName:      resp.ServiceName,
		CityID:           resp.CityID,
		CityName:         resp.CityName,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		Status:           resp.Status,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
