package domain

import "time"

// City represents a service location. Only active cities are offerable.
type City struct {
	ID       string
	TenantID string
	Name     string
	State    string
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfessionalCityLink is the many-to-many membership between
// professionals and the cities they serve
type ProfessionalCityLink struct {
	ID             string
	TenantID       string
	ProfessionalID string
	CityID         string

	CreatedAt time.Time
}
