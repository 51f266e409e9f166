package list_professional_cities

import (
	"context"

	listCities "github.com/agendaflow/scheduling-service/internal/usecase/list_professional_cities"
)

type ListProfessionalCitiesUseCase interface {
	Execute(ctx context.Context, req *listCities.Request) (*listCities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
