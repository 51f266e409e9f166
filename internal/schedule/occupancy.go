package schedule

import (
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
)

// OccupancyResolver определяет занятость слотов дневной сетки:
// в каком слоте начинается агендамент и какие слоты заняты «тенью»
// более длинной услуги, начавшейся раньше.
type OccupancyResolver struct {
	grid         Grid
	appointments []*domain.Appointment
	durations    map[string]int // serviceID -> длительность в минутах
}

// NewOccupancyResolver создает резолвер над снимком агендаментов.
// Длительности услуг берутся из справочника services.
func NewOccupancyResolver(grid Grid, appointments []*domain.Appointment, services []domain.Service) *OccupancyResolver {
	durations := make(map[string]int, len(services))
	for _, svc := range services {
		durations[svc.ID] = svc.DurationMinutes
	}

	return &OccupancyResolver{
		grid:         grid,
		appointments: appointments,
		durations:    durations,
	}
}

// AppointmentsOnDate возвращает агендаменты на указанный календарный день
// (сравнивается день, не момент времени) с опциональными фильтрами по
// профессионалу и городу. Исходный порядок коллекции сохраняется.
func (r *OccupancyResolver) AppointmentsOnDate(date time.Time, professionalID, cityID *string) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)

	for _, appt := range r.appointments {
		if !appt.SameDay(date) {
			continue
		}
		if professionalID != nil && appt.ProfessionalID != *professionalID {
			continue
		}
		if cityID != nil && appt.CityID != *cityID {
			continue
		}
		result = append(result, appt)
	}

	return result
}

// AppointmentAt возвращает агендамент, начинающийся ровно в этом слоте
// у этого профессионала, или nil. Время начала усекается до границы
// слота; момент вне сетки просто не дает совпадения.
func (r *OccupancyResolver) AppointmentAt(date time.Time, slot domain.TimeSlot, professionalID string) *domain.Appointment {
	for _, appt := range r.AppointmentsOnDate(date, &professionalID, nil) {
		startSlot, ok := r.grid.SlotFor(appt.Date)
		if !ok {
			continue
		}
		if startSlot.Time == slot.Time {
			return appt
		}
	}

	return nil
}

// IsShadowOccupied возвращает true, когда слот попадает строго внутрь
// интервала [начало, начало+длительность) какого-то агендамента этого
// профессионала. Сам стартовый слот тенью не считается, он отдаётся
// через AppointmentAt. Хвост услуги, выходящий за последний слот сетки,
// никак не представлен: сетка фиксированного размера.
func (r *OccupancyResolver) IsShadowOccupied(date time.Time, slot domain.TimeSlot, professionalID string) bool {
	slotMinutes := slot.Minutes()

	for _, appt := range r.AppointmentsOnDate(date, &professionalID, nil) {
		startMinutes := appt.Date.Hour()*60 + appt.Date.Minute()
		endMinutes := startMinutes + r.ServiceDuration(appt.ServiceID)

		if slotMinutes > startMinutes && slotMinutes < endMinutes {
			return true
		}
	}

	return false
}

// ServiceDuration возвращает длительность услуги в минутах.
// Для неизвестной услуги подставляется дефолтная длительность,
// осознанный fallback, а не ошибка.
func (r *OccupancyResolver) ServiceDuration(serviceID string) int {
	if d, ok := r.durations[serviceID]; ok {
		return d
	}
	return domain.DefaultServiceDurationMinutes
}

// HasService возвращает true, если услуга есть в справочнике.
// Используется вызывающим кодом для логирования срабатываний fallback.
func (r *OccupancyResolver) HasService(serviceID string) bool {
	_, ok := r.durations[serviceID]
	return ok
}
