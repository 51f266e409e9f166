package move_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("move_appointment: appointment not found")

	// ErrProfessionalNotFound возвращается, когда целевой профессионал не найден
	ErrProfessionalNotFound = errors.New("move_appointment: professional not found")

	// ErrProfessionalNotEligible возвращается, когда целевой профессионал
	// не обслуживает город записи
	ErrProfessionalNotEligible = errors.New("move_appointment: professional does not serve this city")

	// ErrSlotOccupied возвращается, когда в целевом слоте уже начинается другая запись
	ErrSlotOccupied = errors.New("move_appointment: destination slot is occupied")

	// ErrInvalidSlot возвращается, когда целевой слот вне рабочей сетки
	ErrInvalidSlot = errors.New("move_appointment: slot is outside the working grid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_appointment: internal error")
)
