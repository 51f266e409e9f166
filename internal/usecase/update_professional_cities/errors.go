package update_professional_cities

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("update_professional_cities: professional not found")

	// ErrCityNotFound возвращается, когда один из городов не найден
	ErrCityNotFound = errors.New("update_professional_cities: city not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_professional_cities: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_professional_cities: internal error")
)
