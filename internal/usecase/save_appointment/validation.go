package save_appointment

import (
	"fmt"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.CityID == "" {
		return fmt.Errorf("%w: cityID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveStatus валидирует статус и подставляет confirmed по умолчанию
func resolveStatus(status string) (domain.AppointmentStatus, error) {
	if status == "" {
		return domain.StatusConfirmed, nil
	}
	if !domain.IsValidAppointmentStatus(domain.AppointmentStatus(status)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return domain.AppointmentStatus(status), nil
}
