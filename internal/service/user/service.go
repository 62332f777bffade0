// Package user implements profile management and user administration.
package user

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, p domain.UserProfile, now time.Time) (domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string, now time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role, now time.Time) (domain.User, error)
	List(ctx context.Context, filter domain.UserFilter, page domain.PageRequest) ([]domain.User, int, error)
}

type auditRepo interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type blobStore interface {
	Put(ctx context.Context, prefix string, r io.Reader) (blob.Object, error)
	Delete(ctx context.Context, key string) error
}

// Service implements user profile and administration operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	audit  auditRepo
	tx     txManager
	hasher passwordHasher
	blobs  blobStore
	paging domain.PageLimits
	now    func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	tx txManager,
	hasher passwordHasher,
	blobs blobStore,
	paging domain.PageLimits,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		audit:  audit,
		tx:     tx,
		hasher: hasher,
		blobs:  blobs,
		paging: paging,
		now:    time.Now,
	}
}
