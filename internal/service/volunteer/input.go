package volunteer

import (
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// RegisterInput holds the caller's volunteer profile.
type RegisterInput struct {
	Skills                []string
	Availability          domain.Availability
	AvailableHours        *int
	Experience            *string
	HasVehicle            bool
	PreferredActivities   []string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !i.Availability.IsValid() {
		errs = append(errs, domain.FieldError{Field: "availability", Message: "must be weekdays, weekends, evenings, full_time or on_call"})
	}
	if i.AvailableHours != nil && *i.AvailableHours < 1 {
		errs = append(errs, domain.FieldError{Field: "available_hours", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update of a volunteer profile. Nil fields are
// left unchanged.
type UpdateInput struct {
	Skills                []string
	Availability          *domain.Availability
	AvailableHours        *int
	Experience            *string
	HasVehicle            *bool
	PreferredActivities   []string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Availability != nil && !i.Availability.IsValid() {
		errs = append(errs, domain.FieldError{Field: "availability", Message: "invalid value"})
	}
	if i.AvailableHours != nil && *i.AvailableHours < 1 {
		errs = append(errs, domain.FieldError{Field: "available_hours", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) apply(v *domain.Volunteer) {
	if i.Skills != nil {
		v.Skills = cleanList(i.Skills)
	}
	if i.Availability != nil {
		v.Availability = *i.Availability
	}
	if i.AvailableHours != nil {
		v.AvailableHours = i.AvailableHours
	}
	if i.Experience != nil {
		v.Experience = i.Experience
	}
	if i.HasVehicle != nil {
		v.HasVehicle = *i.HasVehicle
	}
	if i.PreferredActivities != nil {
		v.PreferredActivities = cleanList(i.PreferredActivities)
	}
	if i.EmergencyContactName != nil {
		v.EmergencyContactName = i.EmergencyContactName
	}
	if i.EmergencyContactPhone != nil {
		v.EmergencyContactPhone = i.EmergencyContactPhone
	}
}

// TransitionInput holds a review decision. Notes replace the reviewer notes
// when present.
type TransitionInput struct {
	Status domain.VolunteerStatus
	Notes  *string
}

// ListInput holds filters for the volunteer listing.
type ListInput struct {
	Status       *domain.VolunteerStatus
	Availability *domain.Availability
	Page         domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Availability != nil && !i.Availability.IsValid() {
		errs = append(errs, domain.FieldError{Field: "availability", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// cleanList trims entries and drops empty ones. The result is never nil.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
