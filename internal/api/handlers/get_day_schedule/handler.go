package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	"github.com/agendaflow/scheduling-service/internal/domain"
	getDaySchedule "github.com/agendaflow/scheduling-service/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTenantID = "отсутствует ID тенанта"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD[&professionalId=][&cityId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	req := &getDaySchedule.Request{TenantID: tenantID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	if professionalID := r.URL.Query().Get("professionalId"); professionalID != "" {
		req.ProfessionalID = &professionalID
	}
	if cityID := r.URL.Query().Get("cityId"); cityID != "" {
		req.CityID = &cityID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedule - Failed to build board: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Board built: tenant_id=%s, date=%s, columns=%d",
		tenantID, result.Date, len(result.Columns))
	handlers.RespondJSON(w, http.StatusOK, result)
}
