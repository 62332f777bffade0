// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID      `db:"id"`
	UserID     *uuid.UUID     `db:"user_id"`
	EntityType string         `db:"entity_type"`
	EntityID   uuid.UUID      `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

// Log appends rec to the audit log. Inside RunInTx the record commits or
// rolls back with the mutation it describes.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	q := postgres.Builder().Insert(table).SetMap(map[string]any{
		"id":          rec.ID,
		"user_id":     rec.UserID,
		"entity_type": string(rec.EntityType),
		"entity_id":   rec.EntityID,
		"action":      string(rec.Action),
		"changes":     changes,
		"created_at":  rec.CreatedAt,
	})
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	out := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// PurgeBefore deletes audit records older than cutoff.
func (r *Repo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.Builder().Delete(table).Where(squirrel.Lt{"created_at": cutoff})
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, fmt.Errorf("purge audit records: %w", err)
	}
	return tag.RowsAffected(), nil
}
