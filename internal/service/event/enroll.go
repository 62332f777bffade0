package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// Enroll signs the caller up as a volunteer for an event. A pending
// volunteer profile is created on the first enrollment. The event row stays
// locked for the whole transaction so concurrent enrollments cannot exceed
// the participant limit.
func (s *Service) Enroll(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpEventEnroll); err != nil {
		return domain.Event{}, err
	}

	var (
		enrolled  domain.Event
		volunteer domain.Volunteer
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.events.GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if !e.IsActive {
			return domain.NewValidationError("event_id", "event is not active")
		}
		if !e.HasCapacity() {
			return domain.ErrCapacityExceeded
		}

		now := s.now()
		volunteer, err = s.volunteerFor(ctx, p.UserID)
		if err != nil {
			return err
		}
		if err := s.events.AddVolunteer(ctx, e.ID, volunteer.ID, now); err != nil {
			return err
		}
		count, err := s.events.IncrementParticipants(ctx, e.ID, now)
		if err != nil {
			return err
		}
		e.CurrentParticipants = count
		e.UpdatedAt = now
		enrolled = e

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   e.ID,
			Action:     domain.AuditActionEnroll,
			Changes:    map[string]any{"volunteer_id": volunteer.ID.String(), "participants": count},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("event.Enroll: %w", err)
	}

	s.log.InfoContext(ctx, "volunteer enrolled",
		slog.String("event_id", eventID.String()),
		slog.String("volunteer_id", volunteer.ID.String()),
		slog.Int("participants", enrolled.CurrentParticipants))
	return enrolled, nil
}

// volunteerFor returns the volunteer profile of userID, creating a pending
// one if the user has none. A profile created concurrently by another
// enrollment is returned instead of failing.
func (s *Service) volunteerFor(ctx context.Context, userID uuid.UUID) (domain.Volunteer, error) {
	v, err := s.volunteers.GetByUserID(ctx, userID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Volunteer{}, err
	}

	now := s.now()
	return s.volunteers.CreateIfAbsent(ctx, domain.Volunteer{
		ID:                  uuid.New(),
		UserID:              userID,
		Skills:              []string{},
		Availability:        domain.DefaultAvailability,
		PreferredActivities: []string{},
		Status:              domain.VolunteerStatusPending,
		Documents:           []string{},
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

// ListVolunteers returns the volunteers enrolled in an event (organizer or
// admin) in enrollment order.
func (s *Service) ListVolunteers(ctx context.Context, eventID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Volunteer], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Page[domain.Volunteer]{}, err
	}

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return domain.Page[domain.Volunteer]{}, fmt.Errorf("event.ListVolunteers: %w", err)
	}
	if err := gate.RequireOwnership(p, e, domain.EventOwner); err != nil {
		return domain.Page[domain.Volunteer]{}, err
	}

	page := s.paging.Apply(req)
	volunteers, total, err := s.volunteers.ListByEvent(ctx, eventID, page)
	if err != nil {
		return domain.Page[domain.Volunteer]{}, fmt.Errorf("event.ListVolunteers: %w", err)
	}
	return domain.NewPage(volunteers, total, page), nil
}
