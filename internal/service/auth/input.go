package auth

import (
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const minPasswordLength = 6

// RegisterInput holds parameters for account registration. Organization
// fields are required only when Role is ong.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Phone    string

	Address    *string
	City       *string
	State      *string
	PostalCode *string

	CNPJ             *string
	Description      *string
	FoundingDate     *time.Time
	Website          *string
	SocialMedia      map[string]string
	ResponsibleName  *string
	ResponsiblePhone *string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Phone = strings.TrimSpace(i.Phone)
	if i.Role == "" {
		i.Role = domain.RoleUser
	}
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil || len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	// Admins are promoted by other admins, never self-registered.
	if i.Role != domain.RoleUser && i.Role != domain.RoleOng {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user or ong"})
	}

	if i.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	}

	if i.Role == domain.RoleOng {
		required := []struct {
			field string
			value *string
		}{
			{"cnpj", i.CNPJ},
			{"description", i.Description},
			{"responsible_name", i.ResponsibleName},
			{"responsible_phone", i.ResponsiblePhone},
			{"address", i.Address},
			{"city", i.City},
			{"state", i.State},
			{"postal_code", i.PostalCode},
		}
		for _, r := range required {
			if r.value == nil || strings.TrimSpace(*r.value) == "" {
				errs = append(errs, domain.FieldError{Field: r.field, Message: "required for ong accounts"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
