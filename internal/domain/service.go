package domain

import "time"

// Service represents a bookable offering.
// DurationMinutes drives slot-occupancy math on the schedule board.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	DurationMinutes int
	Price           float64
	Category        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
