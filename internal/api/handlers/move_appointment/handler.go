package move_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaflow/scheduling-service/internal/api/handlers"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	moveAppointment "github.com/agendaflow/scheduling-service/internal/usecase/move_appointment"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidTime             = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidSlot             = "целевой слот вне рабочей сетки"
	msgAppointmentNotFound     = "запись не найдена"
	msgProfessionalNotFound    = "профессионал не найден"
	msgProfessionalNotEligible = "профессионал не обслуживает город этой записи"
	msgSlotOccupied            = "в целевом слоте уже начинается другая запись"
	msgMissingTenantID         = "отсутствует ID тенанта"
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/move - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/move - Failed to parse time %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/move - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, moveAppointment.ErrProfessionalNotFound):
			h.logger.Warn("PATCH /appointments/{id}/move - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, moveAppointment.ErrProfessionalNotEligible):
			h.logger.Warn("PATCH /appointments/{id}/move - Professional not eligible: appointment_id=%s, professional_id=%s",
				appointmentID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgProfessionalNotEligible)

		case errors.Is(err, moveAppointment.ErrSlotOccupied):
			h.logger.Warn("PATCH /appointments/{id}/move - Slot occupied: appointment_id=%s, time=%s",
				appointmentID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, moveAppointment.ErrInvalidSlot):
			h.logger.Warn("PATCH /appointments/{id}/move - Slot outside grid: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, moveAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/move - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id}/move - Failed to move: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/move - Moved: appointment_id=%s, professional_id=%s, time=%s, changed=%t",
		result.ID, result.ProfessionalID, result.StartTime, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
