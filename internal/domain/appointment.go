package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked service instance in the schedule
type Appointment struct {
	ID       string
	TenantID string

	ClientID   string
	ClientName string // denormalized display copy

	ProfessionalID   string
	ProfessionalName string

	ServiceID   string
	ServiceName string

	CityID   string
	CityName string

	// Date holds the calendar day and the slot start time combined.
	// The time-of-day always lands on a grid slot boundary; the save
	// path is responsible for snapping it.
	Date time.Time

	Status AppointmentStatus
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// SameDay returns true if the appointment falls on the given calendar day
func (a *Appointment) SameDay(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AppointmentFilter фильтр для выборки расписания на день
type AppointmentFilter struct {
	TenantID       string
	Date           time.Time // обязательный параметр, календарный день
	ProfessionalID *string   // фильтр по профессионалу (опционально)
	CityID         *string   // фильтр по городу (опционально)
}
