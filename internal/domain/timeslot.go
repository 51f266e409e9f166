package domain

import "github.com/agendaflow/scheduling-service/pkg/types"

// TimeSlot is a derived value, never persisted: one bookable cell of the
// day grid. Identity is the Time string ("08:30"), not a position in the
// grid, so reordering never changes it.
type TimeSlot struct {
	Time   types.TimeString
	Hour   int
	Minute int
}

// Minutes returns the slot start as minutes since midnight
func (s TimeSlot) Minutes() int {
	return s.Hour*60 + s.Minute
}
