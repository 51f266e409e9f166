package save_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается при обновлении несуществующей записи
	ErrAppointmentNotFound = errors.New("save_appointment: appointment not found")

	// ErrInvalidSlot возвращается, когда время начала вне рабочей сетки
	ErrInvalidSlot = errors.New("save_appointment: slot is outside the working grid")

	// ErrInvalidStatus возвращается при недопустимом статусе записи
	ErrInvalidStatus = errors.New("save_appointment: invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_appointment: internal error")
)
