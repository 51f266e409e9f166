package list_professional_cities

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	listCities "github.com/agendaflow/scheduling-service/internal/usecase/list_professional_cities"
)

const (
	msgProfessionalNotFound = "профессионал не найден"
	msgMissingTenantID      = "отсутствует ID тенанта"
)

type Handler struct {
	useCase ListProfessionalCitiesUseCase
	logger  Logger
}

func NewHandler(useCase ListProfessionalCitiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/cities[?currentCityId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/cities - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	professionalID := mux.Vars(r)["professionalId"]

	result, err := h.useCase.Execute(r.Context(), &listCities.Request{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		CurrentCityID:  r.URL.Query().Get("currentCityId"),
	})
	if err != nil {
		switch {
		case errors.Is(err, listCities.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/cities - Not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, listCities.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/cities - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /professionals/{id}/cities - Failed: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/cities - %d cities, selected=%q: professional_id=%s",
		len(result.Cities), result.SelectedCityID, professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
