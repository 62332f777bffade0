package event

import (
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// CreateInput holds parameters for creating an event.
type CreateInput struct {
	Title           string
	Description     string
	EventType       domain.EventType
	StartDate       time.Time
	EndDate         *time.Time
	Location        string
	Address         string
	City            string
	State           string
	Latitude        *float64
	Longitude       *float64
	ContactEmail    *string
	ContactPhone    *string
	MaxParticipants *int
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Location = strings.TrimSpace(i.Location)
	i.Address = strings.TrimSpace(i.Address)
	i.City = strings.TrimSpace(i.City)
	i.State = strings.TrimSpace(i.State)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"title", i.Title},
		{"description", i.Description},
		{"location", i.Location},
		{"address", i.Address},
		{"city", i.City},
		{"state", i.State},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "invalid value"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	errs = append(errs, checkDetails(i.StartDate, i.EndDate, i.ContactEmail, i.MaxParticipants)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update of an event. Nil fields are left
// unchanged.
type UpdateInput struct {
	Title           *string
	Description     *string
	EventType       *domain.EventType
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	Address         *string
	City            *string
	State           *string
	Latitude        *float64
	Longitude       *float64
	ContactEmail    *string
	ContactPhone    *string
	MaxParticipants *int
}

// Validate validates the fields present in the update.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	optional := []struct {
		field string
		value *string
	}{
		{"title", i.Title},
		{"description", i.Description},
		{"location", i.Location},
		{"address", i.Address},
		{"city", i.City},
		{"state", i.State},
	}
	for _, o := range optional {
		if o.value != nil && strings.TrimSpace(*o.value) == "" {
			errs = append(errs, domain.FieldError{Field: o.field, Message: "must not be empty"})
		}
	}
	if i.EventType != nil && !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply merges the update into e and validates the resulting schedule and
// capacity.
func (i UpdateInput) apply(e *domain.Event) error {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	str(&e.Title, i.Title)
	str(&e.Description, i.Description)
	str(&e.Location, i.Location)
	str(&e.Address, i.Address)
	str(&e.City, i.City)
	str(&e.State, i.State)

	if i.EventType != nil {
		e.EventType = *i.EventType
	}
	if i.StartDate != nil {
		e.StartDate = *i.StartDate
	}
	if i.EndDate != nil {
		e.EndDate = i.EndDate
	}
	if i.Latitude != nil {
		e.Latitude = i.Latitude
	}
	if i.Longitude != nil {
		e.Longitude = i.Longitude
	}
	if i.ContactEmail != nil {
		e.ContactEmail = i.ContactEmail
	}
	if i.ContactPhone != nil {
		e.ContactPhone = i.ContactPhone
	}
	if i.MaxParticipants != nil {
		e.MaxParticipants = i.MaxParticipants
	}

	errs := checkDetails(e.StartDate, e.EndDate, e.ContactEmail, e.MaxParticipants)
	if e.MaxParticipants != nil && *e.MaxParticipants < e.CurrentParticipants {
		errs = append(errs, domain.FieldError{Field: "max_participants", Message: "below current number of participants"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkDetails(start time.Time, end *time.Time, email *string, limit *int) []domain.FieldError {
	var errs []domain.FieldError
	if end != nil && !start.IsZero() && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if email != nil && *email != "" {
		if _, err := mail.ParseAddress(*email); err != nil {
			errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email format"})
		}
	}
	if limit != nil && *limit < 1 {
		errs = append(errs, domain.FieldError{Field: "max_participants", Message: "must be positive"})
	}
	return errs
}

// ListInput holds filters for the public event listing. Only active events
// are listed.
type ListInput struct {
	EventType *domain.EventType
	City      *string
	State     *string
	From      *time.Time
	To        *time.Time
	Page      domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.EventType != nil && !i.EventType.IsValid() {
		return domain.NewValidationError("event_type", "invalid value")
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		return domain.NewValidationError("to", "must not be before from")
	}
	return nil
}
