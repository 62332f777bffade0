package domain

import (
	"slices"

	"github.com/google/uuid"
)

// PrincipalKind classifies the caller of a request.
type PrincipalKind int

const (
	// PrincipalAnonymous is a caller that sent no credential.
	PrincipalAnonymous PrincipalKind = iota
	// PrincipalPublic is a caller that explicitly marked the request public.
	PrincipalPublic
	// PrincipalAuthenticated is a caller with a valid credential for an active user.
	PrincipalAuthenticated
)

func (k PrincipalKind) String() string {
	switch k {
	case PrincipalPublic:
		return "public"
	case PrincipalAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Principal is the resolved identity of a request. Only Authenticated
// principals carry user fields.
type Principal struct {
	Kind     PrincipalKind
	UserID   uuid.UUID
	Role     Role
	Name     string
	Email    string
	IsActive bool
}

func AnonymousPrincipal() Principal { return Principal{Kind: PrincipalAnonymous} }

func PublicPrincipal() Principal { return Principal{Kind: PrincipalPublic} }

// AuthenticatedPrincipal builds the principal for u.
func AuthenticatedPrincipal(u User) Principal {
	return Principal{
		Kind:     PrincipalAuthenticated,
		UserID:   u.ID,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

func (p Principal) IsAuthenticated() bool { return p.Kind == PrincipalAuthenticated }

func (p Principal) IsPublic() bool { return p.Kind == PrincipalPublic }

func (p Principal) IsAdmin() bool { return p.IsAuthenticated() && p.Role == RoleAdmin }

// HasRole reports whether p is authenticated with one of roles.
func (p Principal) HasRole(roles ...Role) bool {
	return p.IsAuthenticated() && slices.Contains(roles, p.Role)
}

// ActorID returns the user id for authenticated principals and nil otherwise.
func (p Principal) ActorID() *uuid.UUID {
	if !p.IsAuthenticated() {
		return nil
	}
	id := p.UserID
	return &id
}
