package city

import "errors"

var (
	// ErrCityNotFound возвращается, когда город не найден
	ErrCityNotFound = errors.New("city.repository: city not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("city.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("city.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("city.repository: failed to scan row")
)
