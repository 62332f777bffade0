// Package volunteer implements volunteer profiles and their review.
package volunteer

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type volunteerRepo interface {
	Create(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error)
	Update(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error)
	AppendDocuments(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Volunteer, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Volunteer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Volunteer, error)
	List(ctx context.Context, filter domain.VolunteerFilter, page domain.PageRequest) ([]domain.Volunteer, int, error)
}

type eventRepo interface {
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, page domain.PageRequest) ([]domain.Event, int, error)
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

// Service implements volunteer operations.
type Service struct {
	log        *slog.Logger
	volunteers volunteerRepo
	events     eventRepo
	audit      auditRepo
	tx         txManager
	blobs      blobStore
	paging     domain.PageLimits
	maxFiles   int
	now        func() time.Time
}

// NewService creates a new volunteer service instance.
func NewService(
	logger *slog.Logger,
	volunteers volunteerRepo,
	events eventRepo,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	paging domain.PageLimits,
	maxFiles int,
) *Service {
	return &Service{
		log:        logger.With("service", "volunteer"),
		volunteers: volunteers,
		events:     events,
		audit:      audit,
		tx:         tx,
		blobs:      blobs,
		paging:     paging,
		maxFiles:   maxFiles,
		now:        time.Now,
	}
}
