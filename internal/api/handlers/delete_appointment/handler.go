package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	"github.com/agendaflow/scheduling-service/internal/service/appointments"
)

const (
	msgNotFound        = "запись не найдена"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]

	if err := h.service.Delete(r.Context(), tenantID, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Deleted: appointment_id=%s, tenant_id=%s", appointmentID, tenantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
