package update_professional_cities

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	updateProfessionalCities "github.com/agendaflow/scheduling-service/internal/usecase/update_professional_cities"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgProfessionalNotFound = "профессионал не найден"
	msgCityNotFound         = "город не найден"
	msgMissingTenantID      = "отсутствует ID тенанта"
)

type Handler struct {
	useCase UpdateProfessionalCitiesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateProfessionalCitiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/cities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/cities - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	professionalID := mux.Vars(r)["professionalId"]

	var req UpdateProfessionalCitiesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/cities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, professionalID))
	if err != nil {
		switch {
		case errors.Is(err, updateProfessionalCities.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/cities - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, updateProfessionalCities.ErrCityNotFound):
			h.logger.Warn("PUT /professionals/{id}/cities - City not found: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondNotFound(w, msgCityNotFound)

		case errors.Is(err, updateProfessionalCities.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/cities - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /professionals/{id}/cities - Failed to update cities: professional_id=%s, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/cities - Updated: professional_id=%s, cities=%d",
		result.ProfessionalID, len(result.CityIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
