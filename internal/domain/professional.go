package domain

import "time"

// ProfessionalStatus represents the working status of a professional
type ProfessionalStatus string

const (
	ProfessionalActive   ProfessionalStatus = "active"
	ProfessionalInactive ProfessionalStatus = "inactive"
)

// Professional represents a service provider.
// Reference data for the scheduling core: managed by CRUD, read-only here.
type Professional struct {
	ID             string
	TenantID       string
	Name           string
	Email          string
	Phone          string
	Specialization string
	Status         ProfessionalStatus
	AvatarURL      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the professional is schedulable
func (p *Professional) IsActive() bool {
	return p.Status == ProfessionalActive
}
