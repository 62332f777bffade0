// Package animal implements adoption listings.
package animal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type animalRepo interface {
	Create(ctx context.Context, a domain.Animal) (domain.Animal, error)
	Update(ctx context.Context, a domain.Animal) (domain.Animal, error)
	UpdateAdoption(ctx context.Context, a domain.Animal) (domain.Animal, error)
	AppendImages(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Animal, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Animal, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Animal, error)
	List(ctx context.Context, filter domain.AnimalFilter, page domain.PageRequest) ([]domain.Animal, int, error)
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

// Service implements animal listing operations.
type Service struct {
	log      *slog.Logger
	animals  animalRepo
	users    userRepo
	audit    auditRepo
	tx       txManager
	blobs    blobStore
	paging   domain.PageLimits
	maxFiles int
	now      func() time.Time
}

// NewService creates a new animal service instance.
func NewService(
	logger *slog.Logger,
	animals animalRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	paging domain.PageLimits,
	maxFiles int,
) *Service {
	return &Service{
		log:      logger.With("service", "animal"),
		animals:  animals,
		users:    users,
		audit:    audit,
		tx:       tx,
		blobs:    blobs,
		paging:   paging,
		maxFiles: maxFiles,
		now:      time.Now,
	}
}
