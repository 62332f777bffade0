package event

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// Create schedules a new event organized by the calling ONG or admin.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Event, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpEventCreate); err != nil {
		return domain.Event{}, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	now := s.now()
	e := domain.Event{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		EventType:       input.EventType,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Location:        input.Location,
		Address:         input.Address,
		City:            input.City,
		State:           input.State,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		MaxParticipants: input.MaxParticipants,
		IsActive:        true,
		UserID:          p.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created domain.Event
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.events.Create(ctx, e)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.Create: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", created.ID.String()),
		slog.String("organizer_id", p.UserID.String()))
	return created, nil
}

// Get returns an event by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.Get: %w", err)
	}
	return e, nil
}

// List returns a page of active events ordered by start date.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Event], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Event]{}, err
	}
	return s.list(ctx, domain.EventFilter{
		EventType:  input.EventType,
		City:       input.City,
		State:      input.State,
		From:       input.From,
		To:         input.To,
		ActiveOnly: true,
	}, input.Page)
}

// ListMine returns every event organized by the caller, active or not.
func (s *Service) ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Event], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpEventListMine); err != nil {
		return domain.Page[domain.Event]{}, err
	}
	return s.list(ctx, domain.EventFilter{UserID: &p.UserID}, page)
}

func (s *Service) list(ctx context.Context, filter domain.EventFilter, req domain.PageRequest) (domain.Page[domain.Event], error) {
	page := s.paging.Apply(req)
	events, total, err := s.events.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Event]{}, fmt.Errorf("event.List: %w", err)
	}
	return domain.NewPage(events, total, page), nil
}

// Update applies a partial update to an event (organizer or admin).
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (domain.Event, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Event{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	updated, err := s.mutate(ctx, id, domain.AuditActionUpdate, nil, func(e *domain.Event) error {
		return input.apply(e)
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.Update: %w", err)
	}
	return updated, nil
}

// SetActive publishes or withdraws an event (organizer or admin).
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.Event, error) {
	if err := gate.RequireAuthenticated(ctxutil.PrincipalFromCtx(ctx)); err != nil {
		return domain.Event{}, err
	}

	changes := map[string]any{"is_active": active}
	updated, err := s.mutate(ctx, id, domain.AuditActionStatus, changes, func(e *domain.Event) error {
		e.IsActive = active
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "event activation changed",
		slog.String("event_id", id.String()),
		slog.Bool("is_active", active))
	return updated, nil
}

// Cancel withdraws an event. Enrollments are kept.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return s.SetActive(ctx, id, false)
}

// SetImage replaces the cover image of an event (organizer or admin).
func (s *Service) SetImage(ctx context.Context, id uuid.UUID, file io.Reader) (domain.Event, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Event{}, err
	}

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.SetImage: %w", err)
	}
	if err := gate.RequireOwnership(p, e, domain.EventOwner); err != nil {
		return domain.Event{}, err
	}
	if file == nil {
		return domain.Event{}, domain.NewValidationError("image", "required")
	}

	batch, err := upload.Files(ctx, s.blobs, "events/"+id.String(), "image", []io.Reader{file}, 1)
	if err != nil {
		return domain.Event{}, err
	}
	url := batch.URLs()[0]

	updated, err := s.mutate(ctx, id, domain.AuditActionUpdate, map[string]any{"image": url}, func(e *domain.Event) error {
		e.Image = &url
		return nil
	})
	if err != nil {
		batch.Discard(ctx)
		return domain.Event{}, fmt.Errorf("event.SetImage: %w", err)
	}
	return updated, nil
}

// mutate locks event id, checks ownership, applies fn and persists the
// result with an audit record, all in one transaction.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	action domain.AuditAction,
	changes map[string]any,
	fn func(e *domain.Event) error,
) (domain.Event, error) {
	p := ctxutil.PrincipalFromCtx(ctx)

	var updated domain.Event
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.events.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := gate.RequireOwnership(p, e, domain.EventOwner); err != nil {
			return err
		}
		if err := fn(&e); err != nil {
			return err
		}

		now := s.now()
		e.UpdatedAt = now
		updated, err = s.events.Update(ctx, e)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   id,
			Action:     action,
			Changes:    changes,
			CreatedAt:  now,
		})
	})
	return updated, err
}
