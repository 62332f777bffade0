package animal

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// CreateInput holds parameters for listing an animal.
type CreateInput struct {
	Name                    string
	Type                    string
	Breed                   *string
	Age                     *int
	AgeUnit                 domain.AgeUnit
	Gender                  domain.Gender
	Size                    domain.Size
	Color                   *string
	Description             string
	HealthStatus            *string
	IsVaccinated            bool
	IsNeutered              bool
	IsSpecialNeeds          bool
	SpecialNeedsDescription *string
	Location                string
	City                    string
	State                   string
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Type = strings.TrimSpace(i.Type)
	i.Description = strings.TrimSpace(i.Description)
	i.Location = strings.TrimSpace(i.Location)
	i.City = strings.TrimSpace(i.City)
	i.State = strings.TrimSpace(i.State)
	if i.AgeUnit == "" {
		i.AgeUnit = domain.AgeUnitMonths
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	required := []struct{ field, value string }{
		{"name", i.Name},
		{"type", i.Type},
		{"description", i.Description},
		{"location", i.Location},
		{"city", i.City},
		{"state", i.State},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = append(errs, checkAttributes(&i.Gender, &i.Size, &i.AgeUnit, i.Age)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update of an animal listing. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name                    *string
	Breed                   *string
	Age                     *int
	AgeUnit                 *domain.AgeUnit
	Gender                  *domain.Gender
	Size                    *domain.Size
	Color                   *string
	Description             *string
	HealthStatus            *string
	IsVaccinated            *bool
	IsNeutered              *bool
	IsSpecialNeeds          *bool
	SpecialNeedsDescription *string
	Location                *string
	City                    *string
	State                   *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	optional := []struct {
		field string
		value *string
	}{
		{"name", i.Name},
		{"description", i.Description},
		{"location", i.Location},
		{"city", i.City},
		{"state", i.State},
	}
	for _, o := range optional {
		if o.value != nil && strings.TrimSpace(*o.value) == "" {
			errs = append(errs, domain.FieldError{Field: o.field, Message: "must not be empty"})
		}
	}
	errs = append(errs, checkAttributes(i.Gender, i.Size, i.AgeUnit, i.Age)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) apply(a *domain.Animal) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	opt := func(dst **string, v *string) {
		if v != nil {
			s := strings.TrimSpace(*v)
			*dst = &s
		}
	}
	flag := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	str(&a.Name, i.Name)
	str(&a.Description, i.Description)
	str(&a.Location, i.Location)
	str(&a.City, i.City)
	str(&a.State, i.State)
	opt(&a.Breed, i.Breed)
	opt(&a.Color, i.Color)
	opt(&a.HealthStatus, i.HealthStatus)
	opt(&a.SpecialNeedsDescription, i.SpecialNeedsDescription)
	flag(&a.IsVaccinated, i.IsVaccinated)
	flag(&a.IsNeutered, i.IsNeutered)
	flag(&a.IsSpecialNeeds, i.IsSpecialNeeds)

	if i.Age != nil {
		age := *i.Age
		a.Age = &age
	}
	if i.AgeUnit != nil {
		a.AgeUnit = *i.AgeUnit
	}
	if i.Gender != nil {
		a.Gender = *i.Gender
	}
	if i.Size != nil {
		a.Size = *i.Size
	}
}

func checkAttributes(gender *domain.Gender, size *domain.Size, unit *domain.AgeUnit, age *int) []domain.FieldError {
	var errs []domain.FieldError
	if gender != nil && !gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be male, female or unknown"})
	}
	if size != nil && !size.IsValid() {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be small, medium, large or extra_large"})
	}
	if unit != nil && !unit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "age_unit", Message: "must be days, months or years"})
	}
	if age != nil && *age < 0 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must not be negative"})
	}
	return errs
}

// TransitionInput holds a new adoption status and, for adopted, the adopter.
type TransitionInput struct {
	Status    domain.AdoptionStatus
	AdoptedBy *uuid.UUID
}

// ListInput holds filters for the public animal listing. AdoptionStatus
// defaults to available.
type ListInput struct {
	Type           *string
	Size           *domain.Size
	Gender         *domain.Gender
	City           *string
	State          *string
	AdoptionStatus *domain.AdoptionStatus
	Page           domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	errs := checkAttributes(i.Gender, i.Size, nil, nil)
	if i.AdoptionStatus != nil && !i.AdoptionStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "adoption_status", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
