package user

import (
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// UpdateProfileInput holds a partial profile update. Nil fields are left
// unchanged. Organization fields are only applied to ONG accounts.
type UpdateProfileInput struct {
	Name       *string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Bio        *string

	Description      *string
	Website          *string
	SocialMedia      map[string]string
	ResponsibleName  *string
	ResponsiblePhone *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Bio != nil && len(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}
	if i.Website != nil && *i.Website != "" &&
		!strings.HasPrefix(*i.Website, "http://") && !strings.HasPrefix(*i.Website, "https://") {
		errs = append(errs, domain.FieldError{Field: "website", Message: "must be an http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply merges the input into u.
func (i UpdateProfileInput) apply(u *domain.User) {
	set := func(dst **string, v *string) {
		if v != nil {
			s := strings.TrimSpace(*v)
			*dst = &s
		}
	}

	if i.Name != nil {
		u.Name = strings.TrimSpace(*i.Name)
	}
	p := &u.Profile
	set(&p.Phone, i.Phone)
	set(&p.Address, i.Address)
	set(&p.City, i.City)
	set(&p.State, i.State)
	set(&p.PostalCode, i.PostalCode)
	set(&p.Bio, i.Bio)

	if u.Role != domain.RoleOng {
		return
	}
	set(&p.Description, i.Description)
	set(&p.Website, i.Website)
	set(&p.ResponsibleName, i.ResponsibleName)
	set(&p.ResponsiblePhone, i.ResponsiblePhone)
	if i.SocialMedia != nil {
		p.SocialMedia = i.SocialMedia
	}
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	if len(i.NewPassword) < 6 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must be at least 6 characters"})
	} else if len(i.NewPassword) > 72 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filters for the admin user listing.
type ListInput struct {
	Role     *domain.Role
	IsActive *bool
	Page     domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Role != nil && !i.Role.IsValid() {
		return domain.NewValidationError("role", "invalid value")
	}
	return nil
}
