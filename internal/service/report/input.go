package report

import (
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// CreateInput holds parameters for filing a report.
type CreateInput struct {
	Title        string
	Description  string
	Location     string
	Latitude     *float64
	Longitude    *float64
	AnimalType   string
	UrgencyLevel domain.UrgencyLevel
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Location = strings.TrimSpace(i.Location)
	i.AnimalType = strings.TrimSpace(i.AnimalType)
	if i.UrgencyLevel == "" {
		i.UrgencyLevel = domain.UrgencyMedium
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.Location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	if i.AnimalType == "" {
		errs = append(errs, domain.FieldError{Field: "animal_type", Message: "required"})
	}
	if !i.UrgencyLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "urgency_level", Message: "must be low, medium, high or critical"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filters for report listings.
type ListInput struct {
	Status       *domain.ReportStatus
	UrgencyLevel *domain.UrgencyLevel
	AnimalType   *string
	Page         domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.UrgencyLevel != nil && !i.UrgencyLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "urgency_level", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
