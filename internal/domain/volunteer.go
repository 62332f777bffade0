package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvailability is used when a profile is created implicitly by
// enrolling in an event.
const DefaultAvailability = AvailabilityWeekends

// Volunteer is the volunteer profile of a user. A user has at most one.
type Volunteer struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Skills                []string
	Availability          Availability
	AvailableHours        *int
	Experience            *string
	HasVehicle            bool
	PreferredActivities   []string
	Status                VolunteerStatus
	Notes                 *string
	StartDate             *time.Time
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Documents             []string
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ApplyStatus moves the volunteer to status. StartDate is stamped on the
// first transition into approved or active and never changed afterwards.
func (v *Volunteer) ApplyStatus(status VolunteerStatus, now time.Time) {
	v.Status = status
	if v.StartDate == nil && (status == VolunteerStatusApproved || status == VolunteerStatusActive) {
		t := now
		v.StartDate = &t
	}
}

// VolunteerFilter holds exact-match filters for volunteer listings.
type VolunteerFilter struct {
	Status       *VolunteerStatus
	Availability *Availability
}
