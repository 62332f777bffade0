package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. ONG accounts carry the organization
// fields in Profile.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	IsVerified   bool
	Profile      UserProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile holds the optional contact and organization fields of a user.
type UserProfile struct {
	Phone            *string
	Address          *string
	City             *string
	State            *string
	PostalCode       *string
	Bio              *string
	ProfileImage     *string
	CNPJ             *string
	Description      *string
	FoundingDate     *time.Time
	Website          *string
	SocialMedia      map[string]string
	ResponsibleName  *string
	ResponsiblePhone *string
}

// UserSummary is the public projection of a user embedded in other entities.
type UserSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  Role
	Phone *string
	City  *string
	State *string
}

// Summary returns the public projection of u.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Phone: u.Profile.Phone,
		City:  u.Profile.City,
		State: u.Profile.State,
	}
}

// UserFilter holds exact-match filters for user listings.
type UserFilter struct {
	Role     *Role
	IsActive *bool
}
