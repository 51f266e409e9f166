package schedule

import (
	"time"

	"github.com/agendaflow/scheduling-service/internal/domain"
	"github.com/agendaflow/scheduling-service/pkg/types"
)

// Grid фиксированная сетка временных слотов рабочего дня.
// Генерация детерминирована: одинаковые параметры дают одинаковую
// последовательность слотов. Слоты идут по порядку, без разрывов.
type Grid struct {
	slots  []domain.TimeSlot
	byTime map[types.TimeString]domain.TimeSlot

	startMinutes int
	endMinutes   int
	stepMinutes  int
}

// NewGrid генерирует сетку слотов от startHour до endHour с шагом stepMinutes.
// Слот входит в сетку, только если он целиком помещается до закрытия.
func NewGrid(startHour, endHour, stepMinutes int) Grid {
	g := Grid{
		byTime:       make(map[types.TimeString]domain.TimeSlot),
		startMinutes: startHour * 60,
		endMinutes:   endHour * 60,
		stepMinutes:  stepMinutes,
	}

	for m := g.startMinutes; m+stepMinutes <= g.endMinutes; m += stepMinutes {
		slot := domain.TimeSlot{
			Time:   types.FromHourMinute(m/60, m%60),
			Hour:   m / 60,
			Minute: m % 60,
		}
		g.slots = append(g.slots, slot)
		g.byTime[slot.Time] = slot
	}

	return g
}

// DefaultGrid сетка рабочего дня салона: 08:00-20:00, шаг 30 минут, 24 слота
func DefaultGrid() Grid {
	return NewGrid(domain.DefaultOpenHour, domain.DefaultCloseHour, domain.DefaultSlotStepMinutes)
}

// Slots возвращает упорядоченный список слотов сетки
func (g Grid) Slots() []domain.TimeSlot {
	return g.slots
}

// Len возвращает количество слотов в сетке
func (g Grid) Len() int {
	return len(g.slots)
}

// Step возвращает шаг сетки в минутах
func (g Grid) Step() int {
	return g.stepMinutes
}

// SlotAt возвращает слот с указанным временем начала
func (g Grid) SlotAt(ts types.TimeString) (domain.TimeSlot, bool) {
	slot, ok := g.byTime[ts]
	return slot, ok
}

// SlotFor возвращает слот, содержащий момент времени t: время усекается
// до ближайшей предыдущей границы слота. Моменты вне рабочего окна
// считаются непопаданием, а не ошибкой.
func (g Grid) SlotFor(t time.Time) (domain.TimeSlot, bool) {
	minutes := t.Hour()*60 + t.Minute()
	if minutes < g.startMinutes || minutes >= g.endMinutes {
		return domain.TimeSlot{}, false
	}

	truncated := minutes - (minutes-g.startMinutes)%g.stepMinutes
	return g.SlotAt(types.FromHourMinute(truncated/60, truncated%60))
}

// SlotMinutes возвращает начало слота в минутах с начала суток
func SlotMinutes(slot domain.TimeSlot) int {
	return slot.Minutes()
}
