package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// List returns a page of users. Admins see every account and may filter;
// public requests see only active ONG accounts.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.User], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	page := s.paging.Apply(input.Page)

	var filter domain.UserFilter
	switch {
	case p.IsPublic():
		ong, active := domain.RoleOng, true
		filter = domain.UserFilter{Role: &ong, IsActive: &active}
	default:
		if err := gate.Authorize(p, domain.OpUserList); err != nil {
			return domain.Page[domain.User]{}, err
		}
		if err := input.Validate(); err != nil {
			return domain.Page[domain.User]{}, err
		}
		filter = domain.UserFilter{Role: input.Role, IsActive: input.IsActive}
	}

	users, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("user.List: %w", err)
	}
	return domain.NewPage(users, total, page), nil
}

// Get returns any user by id (admin only).
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if err := gate.Authorize(ctxutil.PrincipalFromCtx(ctx), domain.OpUserGet); err != nil {
		return domain.User{}, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// SetActive activates or deactivates an account (admin only). Admins cannot
// deactivate themselves.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.User, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserSetActive); err != nil {
		return domain.User{}, err
	}
	if id == p.UserID && !active {
		return domain.User{}, domain.NewValidationError("is_active", "cannot deactivate your own account")
	}

	var updated domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.now()
		var err error
		updated, err = s.users.SetActive(ctx, id, active, now)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Action:     domain.AuditActionStatus,
			Changes:    map[string]any{"is_active": active},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "user activation changed",
		slog.String("target_user_id", id.String()),
		slog.Bool("is_active", active))
	return updated, nil
}

// SetRole changes the role of a user (admin only). Admins cannot demote
// themselves.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.User, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserSetRole); err != nil {
		return domain.User{}, err
	}
	if !role.IsValid() {
		return domain.User{}, domain.NewValidationError("role", "must be user, ong or admin")
	}
	if id == p.UserID && role != domain.RoleAdmin {
		return domain.User{}, domain.NewValidationError("role", "cannot demote yourself")
	}

	var updated domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.now()
		var err error
		updated, err = s.users.SetRole(ctx, id, role, now)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": string(role)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", id.String()),
		slog.String("new_role", role.String()))
	return updated, nil
}
