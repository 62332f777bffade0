// Package auth implements account registration and password login.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
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

type tokenIssuer interface {
	IssueToken(userID uuid.UUID, role domain.Role) (string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	audit  auditRepo
	tx     txManager
	hasher passwordHasher
	tokens tokenIssuer
	now    func() time.Time

	// decoy is verified against when the email is unknown so that both
	// paths pay for one hash comparison.
	decoy func() string
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	tx txManager,
	hasher passwordHasher,
	tokens tokenIssuer,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		audit:  audit,
		tx:     tx,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
		decoy: sync.OnceValue(func() string {
			h, _ := hasher.Hash("animal-rescue-decoy-password")
			return h
		}),
	}
}
