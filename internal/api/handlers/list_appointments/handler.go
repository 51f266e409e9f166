package list_appointments

import (
	"net/http"
	"time"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/internal/service/appointments/models"
)

const (
	msgMissingDate     = "отсутствует параметр date"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTenantID = "отсутствует ID тенанта"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD[&professionalId=][&cityId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListAppointmentsRequest{
		TenantID: tenantID,
		Date:     date,
	}
	if professionalID := r.URL.Query().Get("professionalId"); professionalID != "" {
		req.ProfessionalID = &professionalID
	}
	if cityID := r.URL.Query().Get("cityId"); cityID != "" {
		req.CityID = &cityID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list: tenant_id=%s, date=%s, error=%v", tenantID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments: tenant_id=%s, date=%s",
		len(result.Appointments), tenantID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
