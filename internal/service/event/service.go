// Package event implements events organized by ONGs and volunteer
// enrollment.
package event

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
	Update(ctx context.Context, e domain.Event) (domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter, page domain.PageRequest) ([]domain.Event, int, error)
	AddVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID, now time.Time) error
	IncrementParticipants(ctx context.Context, eventID uuid.UUID, now time.Time) (int, error)
}

type volunteerRepo interface {
	CreateIfAbsent(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Volunteer, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, page domain.PageRequest) ([]domain.Volunteer, int, error)
}

type auditRepo interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type blobStore interface {
	Put(ctx context.Context, prefix string, r io.Reader) (blob.Object, error)
	Delete(ctx context.Context, key string) error
}

// Service implements event operations.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	volunteers volunteerRepo
	audit      auditRepo
	tx         txManager
	blobs      blobStore
	paging     domain.PageLimits
	now        func() time.Time
}

// NewService creates a new event service instance.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	volunteers volunteerRepo,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	paging domain.PageLimits,
) *Service {
	return &Service{
		log:        logger.With("service", "event"),
		events:     events,
		volunteers: volunteers,
		audit:      audit,
		tx:         tx,
		blobs:      blobs,
		paging:     paging,
		now:        time.Now,
	}
}
