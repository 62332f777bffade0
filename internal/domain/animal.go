package domain

import (
	"time"

	"github.com/google/uuid"
)

// Animal is an animal listed for adoption by UserID.
type Animal struct {
	ID                      uuid.UUID
	Name                    string
	Type                    string
	Breed                   *string
	Age                     *int
	AgeUnit                 AgeUnit
	Gender                  Gender
	Size                    Size
	Color                   *string
	Description             string
	HealthStatus            *string
	IsVaccinated            bool
	IsNeutered              bool
	IsSpecialNeeds          bool
	SpecialNeedsDescription *string
	AdoptionStatus          AdoptionStatus
	Images                  []string
	UserID                  uuid.UUID
	AdoptedBy               *uuid.UUID
	AdoptedAt               *time.Time
	Location                string
	City                    string
	State                   string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ApplyAdoptionStatus moves the animal to status. Adopter and adoption time
// are stamped together on adopted and cleared together on available; the
// pending state leaves them untouched. The caller validates that adopter
// resolves to an existing user.
func (a *Animal) ApplyAdoptionStatus(status AdoptionStatus, adopter *uuid.UUID, now time.Time) error {
	switch status {
	case AdoptionAdopted:
		if adopter == nil {
			return NewValidationError("adopted_by", "required when status is adopted")
		}
		id := *adopter
		t := now
		a.AdoptedBy = &id
		a.AdoptedAt = &t
	case AdoptionAvailable:
		a.AdoptedBy = nil
		a.AdoptedAt = nil
	case AdoptionPending:
	default:
		return NewValidationError("adoption_status", "invalid value")
	}
	a.AdoptionStatus = status
	return nil
}

// AnimalFilter holds exact-match filters for animal listings.
type AnimalFilter struct {
	Type           *string
	Size           *Size
	Gender         *Gender
	City           *string
	State          *string
	AdoptionStatus *AdoptionStatus
	UserID         *uuid.UUID
	AdoptedBy      *uuid.UUID
}
