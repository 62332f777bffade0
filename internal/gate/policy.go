package gate

import (
	"fmt"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// RequireAuthenticated fails unless p is an authenticated user.
func RequireAuthenticated(p domain.Principal) error {
	switch p.Kind {
	case domain.PrincipalAuthenticated:
		return nil
	case domain.PrincipalPublic:
		return fmt.Errorf("public request: %w", domain.ErrForbidden)
	default:
		return fmt.Errorf("authentication required: %w", domain.ErrUnauthorized)
	}
}

// RequireRole fails unless p is authenticated with one of roles. Public and
// anonymous principals are always denied.
func RequireRole(p domain.Principal, roles ...domain.Role) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.HasRole(roles...) {
		return fmt.Errorf("role %s not permitted: %w", p.Role, domain.ErrForbidden)
	}
	return nil
}

// Authorize checks p against the permission table for op.
func Authorize(p domain.Principal, op domain.Operation) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !domain.Allowed(op, p.Role) {
		return fmt.Errorf("%s not permitted for role %s: %w", op, p.Role, domain.ErrForbidden)
	}
	return nil
}

// RequireOwnership allows admins and the owner of resource as reported by
// owner. Resources without an owner can only be mutated by admins.
func RequireOwnership[T any](p domain.Principal, resource T, owner domain.OwnerResolver[T]) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.IsAdmin() {
		return nil
	}
	if id, ok := owner.OwnerIDOf(resource); ok && id == p.UserID {
		return nil
	}
	return fmt.Errorf("not the owner: %w", domain.ErrForbidden)
}
