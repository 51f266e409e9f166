package schedule

import (
	"fmt"
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// Engine выполняет перемещение агендамента в новую пару
// (профессионал, слот): поток drag-and-drop на доске расписания.
// Один вызов Move соответствует одному переходу: все проверки выполняются до любой
// мутации, перемещение никогда не применяется частично.
type Engine struct {
	grid        Grid
	eligibility *EligibilityIndex
	services    []domain.Service
}

// NewEngine создает движок перемещений над сеткой и индексом доступности
func NewEngine(grid Grid, eligibility *EligibilityIndex, services []domain.Service) *Engine {
	return &Engine{
		grid:        grid,
		eligibility: eligibility,
		services:    services,
	}
}

// MoveRequest параметры перемещения агендамента
type MoveRequest struct {
	AppointmentID    string
	ProfessionalID   string // целевой профессионал
	ProfessionalName string // денормализованное имя для записи в агендамент
	Slot             domain.TimeSlot
}

// MoveResult результат перемещения
type MoveResult struct {
	// Appointments новая коллекция. При no-op или отказе возвращается исходная,
	// без изменений.
	Appointments []*domain.Appointment
	// Appointment перемещённый агендамент (новая копия).
	// При no-op исходный агендамент.
	Appointment *domain.Appointment
	// Changed false, когда цель совпала с источником и перемещение
	// не потребовалось
	Changed bool
}

// Move переносит агендамент в целевой слот целевого профессионала.
//
// Порядок проверок:
//  1. агендамент существует, целевой слот принадлежит сетке;
//  2. no-op: цель совпадает с источником, коллекция возвращается как есть;
//  3. доступность: целевой профессионал обслуживает город агендамента;
//  4. занятость: в целевом слоте не начинается другой агендамент.
//
// Тени от чужих длинных услуг при перемещении не перепроверяются, только
// стартовый слот цели. Коммит заменяет у даты только час и минуту
// (календарный день сохраняется) и профессионала; остальные поля не
// трогаются. Возвращается новая коллекция с одним заменённым элементом.
func (e *Engine) Move(appointments []*domain.Appointment, req MoveRequest) (*MoveResult, error) {
	var source *domain.Appointment
	sourceIdx := -1
	for i, appt := range appointments {
		if appt.ID == req.AppointmentID {
			source = appt
			sourceIdx = i
			break
		}
	}
	if source == nil {
		return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, req.AppointmentID)
	}

	destSlot, ok := e.grid.SlotAt(req.Slot.Time)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotInGrid, req.Slot.Time)
	}

	// Guard A: перемещение в собственный слот это no-op
	if source.ProfessionalID == req.ProfessionalID {
		if sourceSlot, ok := e.grid.SlotFor(source.Date); ok && sourceSlot.Time == destSlot.Time {
			return &MoveResult{
				Appointments: appointments,
				Appointment:  source,
				Changed:      false,
			}, nil
		}
	}

	// Guard B: целевой профессионал должен обслуживать город агендамента
	if !e.eligibility.CanServe(req.ProfessionalID, source.CityID) {
		return nil, fmt.Errorf("%w: city=%s", ErrProfessionalNotEligible, source.CityName)
	}

	// Guard C: целевой слот должен быть свободен от стартующего агендамента
	resolver := NewOccupancyResolver(e.grid, appointments, e.services)
	if occupied := resolver.AppointmentAt(source.Date, destSlot, req.ProfessionalID); occupied != nil {
		return nil, fmt.Errorf("%w: slot=%s", ErrDestinationOccupied, destSlot.Time)
	}

	// Коммит: новая копия с заменёнными временем и профессионалом
	moved := *source
	moved.Date = time.Date(
		source.Date.Year(), source.Date.Month(), source.Date.Day(),
		destSlot.Hour, destSlot.Minute, 0, 0,
		source.Date.Location(),
	)
	moved.ProfessionalID = req.ProfessionalID
	moved.ProfessionalName = req.ProfessionalName

	updated := make([]*domain.Appointment, len(appointments))
	copy(updated, appointments)
	updated[sourceIdx] = &moved

	return &MoveResult{
		Appointments: updated,
		Appointment:  &moved,
		Changed:      true,
	}, nil
}
