package domain

// Business-day grid defaults
const (
	DefaultOpenHour        = 8
	DefaultCloseHour       = 20
	DefaultSlotStepMinutes = 30
)

// DefaultServiceDurationMinutes подставляется, когда услуга агендамента
// не находится в справочнике. Маскирует проблемы целостности данных,
// поэтому места срабатывания логируются с уровнем WARN.
const DefaultServiceDurationMinutes = 60

// Validation constants
const (
	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AppointmentStatuses список допустимых статусов агендамента
var AppointmentStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
}

// IsValidAppointmentStatus проверяет, что статус входит в список допустимых
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
