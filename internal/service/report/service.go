// Package report implements the lifecycle of animal sighting reports.
package report

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type reportRepo interface {
	Create(ctx context.Context, rep domain.Report) (domain.Report, error)
	UpdateLifecycle(ctx context.Context, rep domain.Report) (domain.Report, error)
	AppendImages(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Report, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter, page domain.PageRequest) ([]domain.Report, int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
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

// Service implements report operations.
type Service struct {
	log      *slog.Logger
	reports  reportRepo
	users    userRepo
	audit    auditRepo
	tx       txManager
	blobs    blobStore
	paging   domain.PageLimits
	maxFiles int
	now      func() time.Time
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	paging domain.PageLimits,
	maxFiles int,
) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		reports:  reports,
		users:    users,
		audit:    audit,
		tx:       tx,
		blobs:    blobs,
		paging:   paging,
		maxFiles: maxFiles,
		now:      time.Now,
	}
}
