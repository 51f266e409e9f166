package move_appointment

import (
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
	moveAppointment "github.com/agendaflow/scheduling-service/internal/usecase/move_appointment"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// MoveAppointmentRequest HTTP request model
type MoveAppointmentRequest struct {
	ProfessionalID string `json:"professionalId"` // целевой профессионал
	StartTime      string `json:"startTime"`      // целевой слот, "10:30"
}

// MoveAppointmentResponse HTTP response model
type MoveAppointmentResponse struct {
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
	Changed          bool   `json:"changed"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveAppointmentRequest) ToUseCaseRequest(tenantID, appointmentID string) (*moveAppointment.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &moveAppointment.Request{
		TenantID:       tenantID,
		AppointmentID:  appointmentID,
		ProfessionalID: r.ProfessionalID,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveAppointment.Response) *MoveAppointmentResponse {
	return &MoveAppointmentResponse{
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
		Changed:          resp.Changed,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
