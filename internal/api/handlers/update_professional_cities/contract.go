package update_professional_cities

import (
	"context"

	updateProfessionalCities "github.com/agendaflow/scheduling-service/internal/usecase/update_professional_cities"
)

type UpdateProfessionalCitiesUseCase interface {
	Execute(ctx context.Context, req *updateProfessionalCities.Request) (*updateProfessionalCities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
