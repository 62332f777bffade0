package volunteer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// Profile is a volunteer profile with the events it is enrolled in.
type Profile struct {
	Volunteer   domain.Volunteer
	// Events holds the earliest enrolled events, at most one maximum page.
	Events      []domain.Event
	EventsTotal int
}

// Register creates the caller's volunteer profile in pending review. A user
// has at most one profile.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpVolunteerRegister); err != nil {
		return domain.Volunteer{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Volunteer{}, err
	}

	now := s.now()
	v := domain.Volunteer{
		ID:                    uuid.New(),
		UserID:                p.UserID,
		Skills:                cleanList(input.Skills),
		Availability:          input.Availability,
		AvailableHours:        input.AvailableHours,
		Experience:            input.Experience,
		HasVehicle:            input.HasVehicle,
		PreferredActivities:   cleanList(input.PreferredActivities),
		Status:                domain.VolunteerStatusPending,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		Documents:             []string{},
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	var created domain.Volunteer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.volunteers.GetByUserID(ctx, p.UserID)
		switch {
		case err == nil:
			return fmt.Errorf("volunteer profile: %w", domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		created, err = s.volunteers.Create(ctx, v)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeVolunteer,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.Register: %w", err)
	}

	s.log.InfoContext(ctx, "volunteer registered",
		slog.String("volunteer_id", created.ID.String()),
		slog.String("user_id", p.UserID.String()))
	return created, nil
}

// Get returns a volunteer profile to its owner, ONGs and admins.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Volunteer{}, err
	}

	v, err := s.volunteers.GetByID(ctx, id)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.Get: %w", err)
	}
	if gate.RequireOwnership(p, v, domain.VolunteerOwner) != nil {
		if err := gate.Authorize(p, domain.OpVolunteerView); err != nil {
			return domain.Volunteer{}, err
		}
	}
	return v, nil
}

// GetMine returns the caller's profile with the events they are enrolled in,
// ordered by start date. Only the first maximum-size page of events is
// included; EventsTotal counts all of them.
func (s *Service) GetMine(ctx context.Context) (Profile, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpVolunteerGetMine); err != nil {
		return Profile{}, err
	}

	v, err := s.volunteers.GetByUserID(ctx, p.UserID)
	if err != nil {
		return Profile{}, fmt.Errorf("volunteer.GetMine: %w", err)
	}
	events, total, err := s.events.ListByVolunteer(ctx, v.ID, domain.PageRequest{Page: 1, PageSize: s.paging.MaxSize})
	if err != nil {
		return Profile{}, fmt.Errorf("volunteer.GetMine: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return Profile{Volunteer: v, Events: events, EventsTotal: total}, nil
}

// List returns a page of volunteer profiles (ONG or admin).
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Volunteer], error) {
	if err := gate.Authorize(ctxutil.PrincipalFromCtx(ctx), domain.OpVolunteerList); err != nil {
		return domain.Page[domain.Volunteer]{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Volunteer]{}, err
	}

	page := s.paging.Apply(input.Page)
	volunteers, total, err := s.volunteers.List(ctx, domain.VolunteerFilter{
		Status:       input.Status,
		Availability: input.Availability,
	}, page)
	if err != nil {
		return domain.Page[domain.Volunteer]{}, fmt.Errorf("volunteer.List: %w", err)
	}
	return domain.NewPage(volunteers, total, page), nil
}

// TransitionStatus records a review decision (ONG or admin). The start date
// is set on the first approval or activation.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, input TransitionInput) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpVolunteerTransition); err != nil {
		return domain.Volunteer{}, err
	}
	if !input.Status.IsValid() {
		return domain.Volunteer{}, domain.NewValidationError("status", "must be pending, approved, active or inactive")
	}

	updated, err := s.mutate(ctx, id, domain.AuditActionStatus, func(v *domain.Volunteer) map[string]any {
		changes := map[string]any{"from": string(v.Status), "to": string(input.Status)}
		v.ApplyStatus(input.Status, s.now())
		if input.Notes != nil {
			v.Notes = input.Notes
		}
		return changes
	})
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.TransitionStatus: %w", err)
	}

	s.log.InfoContext(ctx, "volunteer status changed",
		slog.String("volunteer_id", id.String()),
		slog.String("status", input.Status.String()))
	return updated, nil
}

// Update applies a partial update to a profile (owner or admin).
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Volunteer{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Volunteer{}, err
	}

	updated, err := s.mutate(ctx, id, domain.AuditActionUpdate, func(v *domain.Volunteer) map[string]any {
		input.apply(v)
		return nil
	}, ownerOnly(p))
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.Update: %w", err)
	}
	return updated, nil
}

// Deactivate withdraws a profile (owner or admin). Review status is kept.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Volunteer{}, err
	}

	updated, err := s.mutate(ctx, id, domain.AuditActionStatus, func(v *domain.Volunteer) map[string]any {
		v.IsActive = false
		return map[string]any{"is_active": false}
	}, ownerOnly(p))
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "volunteer deactivated", slog.String("volunteer_id", id.String()))
	return updated, nil
}

// AddDocuments appends documents to a profile (owner or admin).
func (s *Service) AddDocuments(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Volunteer{}, err
	}

	v, err := s.volunteers.GetByID(ctx, id)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("volunteer.AddDocuments: %w", err)
	}
	if err := gate.RequireOwnership(p, v, domain.VolunteerOwner); err != nil {
		return domain.Volunteer{}, err
	}

	batch, err := upload.Files(ctx, s.blobs, "volunteers/"+id.String(), "documents", files, s.maxFiles)
	if err != nil {
		return domain.Volunteer{}, err
	}

	updated, err := s.volunteers.AppendDocuments(ctx, id, batch.URLs(), s.now())
	if err != nil {
		batch.Discard(ctx)
		return domain.Volunteer{}, fmt.Errorf("volunteer.AddDocuments: %w", err)
	}
	return updated, nil
}

type guard func(v domain.Volunteer) error

func ownerOnly(p domain.Principal) guard {
	return func(v domain.Volunteer) error {
		return gate.RequireOwnership(p, v, domain.VolunteerOwner)
	}
}

// mutate locks volunteer id, runs the guards, applies fn and persists the
// result with an audit record in one transaction. fn returns the audit
// changes.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	action domain.AuditAction,
	fn func(v *domain.Volunteer) map[string]any,
	guards ...guard,
) (domain.Volunteer, error) {
	p := ctxutil.PrincipalFromCtx(ctx)

	var updated domain.Volunteer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.volunteers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		for _, g := range guards {
			if err := g(v); err != nil {
				return err
			}
		}

		changes := fn(&v)
		now := s.now()
		v.UpdatedAt = now

		updated, err = s.volunteers.Update(ctx, v)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeVolunteer,
			EntityID:   id,
			Action:     action,
			Changes:    changes,
			CreatedAt:  now,
		})
	})
	return updated, err
}
