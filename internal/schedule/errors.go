package schedule

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда агендамент не найден в коллекции
	ErrAppointmentNotFound = errors.New("schedule: appointment not found")

	// ErrSlotNotInGrid возвращается, когда целевой слот не принадлежит сетке
	ErrSlotNotInGrid = errors.New("schedule: slot is not in the grid")

	// ErrProfessionalNotEligible возвращается, когда профессионал не
	// обслуживает город агендамента
	ErrProfessionalNotEligible = errors.New("schedule: professional does not serve this appointment's city")

	// ErrDestinationOccupied возвращается, когда в целевом слоте уже
	// начинается другой агендамент
	ErrDestinationOccupied = errors.New("schedule: destination slot already occupied")
)
