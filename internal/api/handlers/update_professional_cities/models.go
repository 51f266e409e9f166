package update_professional_cities

import (
	updateProfessionalCities "github.com/agendaflow/scheduling-service/internal/usecase/update_professional_cities"
)

// UpdateProfessionalCitiesRequest HTTP request model
type UpdateProfessionalCitiesRequest struct {
	CityIDs []string `json:"cityIds"` // полный набор городов профессионала
}

// UpdateProfessionalCitiesResponse HTTP response model
type UpdateProfessionalCitiesResponse struct {
	ProfessionalID string   `json:"professionalId"`
	CityIDs        []string `json:"cityIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateProfessionalCitiesRequest) ToUseCaseRequest(tenantID, professionalID string) *updateProfessionalCities.Request {
	return &updateProfessionalCities.Request{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		CityIDs:        r.CityIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateProfessionalCities.Response) *UpdateProfessionalCitiesResponse {
	return &UpdateProfessionalCitiesResponse{
		ProfessionalID: resp.ProfessionalID,
		CityIDs:        resp.CityIDs,
	}
}
