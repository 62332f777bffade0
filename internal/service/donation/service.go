// Package donation implements financial and in-kind donations to ONGs.
package donation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type donationRepo interface {
	Create(ctx context.Context, d domain.Donation) (domain.Donation, error)
	UpdateStatus(ctx context.Context, d domain.Donation) (domain.Donation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Donation, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Donation, error)
	List(ctx context.Context, filter domain.DonationFilter, page domain.PageRequest) ([]domain.Donation, int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
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

// Service implements donation operations.
type Service struct {
	log       *slog.Logger
	donations donationRepo
	users     userRepo
	events    eventRepo
	audit     auditRepo
	tx        txManager
	blobs     blobStore
	paging    domain.PageLimits
	now       func() time.Time
}

// NewService creates a new donation service instance.
func NewService(
	logger *slog.Logger,
	donations donationRepo,
	users userRepo,
	events eventRepo,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	paging domain.PageLimits,
) *Service {
	return &Service{
		log:       logger.With("service", "donation"),
		donations: donations,
		users:     users,
		events:    events,
		audit:     audit,
		tx:        tx,
		blobs:     blobs,
		paging:    paging,
		now:       time.Now,
	}
}
