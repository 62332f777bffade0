// Package report implements Report persistence using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const (
	table  = "reports"
	entity = "report"
)

var columns = []string{
	"id", "title", "description", "location", "latitude", "longitude", "animal_type",
	"urgency_level", "status", "images", "user_id", "assigned_to_id", "resolved_at",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Description  string     `db:"description"`
	Location     string     `db:"location"`
	Latitude     *float64   `db:"latitude"`
	Longitude    *float64   `db:"longitude"`
	AnimalType   string     `db:"animal_type"`
	UrgencyLevel string     `db:"urgency_level"`
	Status       string     `db:"status"`
	Images       []string   `db:"images"`
	UserID       *uuid.UUID `db:"user_id"`
	AssignedToID *uuid.UUID `db:"assigned_to_id"`
	ResolvedAt   *time.Time `db:"resolved_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Report {
	return domain.Report{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		AnimalType:   r.AnimalType,
		UrgencyLevel: domain.UrgencyLevel(r.UrgencyLevel),
		Status:       domain.ReportStatus(r.Status),
		Images:       postgres.Strings(r.Images),
		UserID:       r.UserID,
		AssignedToID: r.AssignedToID,
		ResolvedAt:   r.ResolvedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a new report.
func (r *Repo) Create(ctx context.Context, rep domain.Report) (domain.Report, error) {
	q := postgres.Builder().Insert(table).SetMap(map[string]any{
		"id":             rep.ID,
		"title":          rep.Title,
		"description":    rep.Description,
		"location":       rep.Location,
		"latitude":       rep.Latitude,
		"longitude":      rep.Longitude,
		"animal_type":    rep.AnimalType,
		"urgency_level":  string(rep.UrgencyLevel),
		"status":         string(rep.Status),
		"images":         postgres.Strings(rep.Images),
		"user_id":        rep.UserID,
		"assigned_to_id": rep.AssignedToID,
		"resolved_at":    rep.ResolvedAt,
		"created_at":     rep.CreatedAt,
		"updated_at":     rep.UpdatedAt,
	}).Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Report{}, postgres.MapError(err, entity, rep.ID)
	}
	return out.toDomain(), nil
}

// UpdateLifecycle persists status, assignment and resolution of rep.
func (r *Repo) UpdateLifecycle(ctx context.Context, rep domain.Report) (domain.Report, error) {
	q := postgres.Builder().Update(table).SetMap(map[string]any{
		"status":         string(rep.Status),
		"assigned_to_id": rep.AssignedToID,
		"resolved_at":    rep.ResolvedAt,
		"updated_at":     rep.UpdatedAt,
	}).Where(squirrel.Eq{"id": rep.ID}).Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Report{}, postgres.MapError(err, entity, rep.ID)
	}
	return out.toDomain(), nil
}

// AppendImages appends urls to the images of report id, preserving order.
func (r *Repo) AppendImages(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Report, error) {
	q := postgres.Builder().Update(table).
		Set("images", squirrel.Expr("images || ?::text[]", postgres.Strings(urls))).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Report{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// GetByID returns the report with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns report id and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.Report, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Report{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// List returns a page of reports matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter, page domain.PageRequest) ([]domain.Report, int, error) {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.UrgencyLevel != nil {
		where = append(where, squirrel.Eq{"urgency_level": string(*filter.UrgencyLevel)})
	}
	if filter.AnimalType != nil {
		where = append(where, squirrel.Eq{"animal_type": *filter.AnimalType})
	}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.AssignedToID != nil {
		where = append(where, squirrel.Eq{"assigned_to_id": *filter.AssignedToID})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	out := make([]domain.Report, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, total, nil
}
