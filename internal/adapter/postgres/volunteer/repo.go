// Package volunteer implements Volunteer profile persistence using PostgreSQL.
package volunteer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const (
	table  = "volunteers"
	entity = "volunteer"
)

var columns = []string{
	"id", "user_id", "skills", "availability", "available_hours", "experience",
	"has_vehicle", "preferred_activities", "status", "notes", "start_date",
	"emergency_contact_name", "emergency_contact_phone", "documents", "is_active",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides volunteer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new volunteer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                    uuid.UUID  `db:"id"`
	UserID                uuid.UUID  `db:"user_id"`
	Skills                []string   `db:"skills"`
	Availability          string     `db:"availability"`
	AvailableHours        *int       `db:"available_hours"`
	Experience            *string    `db:"experience"`
	HasVehicle            bool       `db:"has_vehicle"`
	PreferredActivities   []string   `db:"preferred_activities"`
	Status                string     `db:"status"`
	Notes                 *string    `db:"notes"`
	StartDate             *time.Time `db:"start_date"`
	EmergencyContactName  *string    `db:"emergency_contact_name"`
	EmergencyContactPhone *string    `db:"emergency_contact_phone"`
	Documents             []string   `db:"documents"`
	IsActive              bool       `db:"is_active"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Volunteer {
	return domain.Volunteer{
		ID:                    r.ID,
		UserID:                r.UserID,
		Skills:                postgres.Strings(r.Skills),
		Availability:          domain.Availability(r.Availability),
		AvailableHours:        r.AvailableHours,
		Experience:            r.Experience,
		HasVehicle:            r.HasVehicle,
		PreferredActivities:   postgres.Strings(r.PreferredActivities),
		Status:                domain.VolunteerStatus(r.Status),
		Notes:                 r.Notes,
		StartDate:             r.StartDate,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		Documents:             postgres.Strings(r.Documents),
		IsActive:              r.IsActive,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func mutable(v domain.Volunteer) map[string]any {
	return map[string]any{
		"skills":                  postgres.Strings(v.Skills),
		"availability":            string(v.Availability),
		"available_hours":         v.AvailableHours,
		"experience":              v.Experience,
		"has_vehicle":             v.HasVehicle,
		"preferred_activities":    postgres.Strings(v.PreferredActivities),
		"status":                  string(v.Status),
		"notes":                   v.Notes,
		"start_date":              v.StartDate,
		"emergency_contact_name":  v.EmergencyContactName,
		"emergency_contact_phone": v.EmergencyContactPhone,
		"is_active":               v.IsActive,
		"updated_at":              v.UpdatedAt,
	}
}

// Create inserts a new volunteer profile. A second profile for the same
// user returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	values := mutable(v)
	values["id"] = v.ID
	values["user_id"] = v.UserID
	values["documents"] = postgres.Strings(v.Documents)
	values["created_at"] = v.CreatedAt

	return r.getOne(ctx, v.ID, postgres.Builder().Insert(table).SetMap(values).Suffix(returning))
}

// CreateIfAbsent inserts v unless userID already has a profile, in which
// case the existing profile is returned. A concurrent insert for the same
// user waits for the other transaction instead of failing.
func (r *Repo) CreateIfAbsent(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	values := mutable(v)
	values["id"] = v.ID
	values["user_id"] = v.UserID
	values["documents"] = postgres.Strings(v.Documents)
	values["created_at"] = v.CreatedAt

	q := postgres.Builder().Insert(table).SetMap(values).Suffix("ON CONFLICT (user_id) DO NOTHING " + returning)
	created, err := r.getOne(ctx, v.ID, q)
	if errors.Is(err, domain.ErrNotFound) {
		return r.GetByUserID(ctx, v.UserID)
	}
	return created, err
}

// Update persists every mutable field of v, including status and start date.
func (r *Repo) Update(ctx context.Context, v domain.Volunteer) (domain.Volunteer, error) {
	q := postgres.Builder().Update(table).SetMap(mutable(v)).Where(squirrel.Eq{"id": v.ID}).Suffix(returning)
	return r.getOne(ctx, v.ID, q)
}

// AppendDocuments appends urls to the documents of volunteer id.
func (r *Repo) AppendDocuments(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Volunteer, error) {
	q := postgres.Builder().Update(table).
		Set("documents", squirrel.Expr("documents || ?::text[]", postgres.Strings(urls))).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	return r.getOne(ctx, id, q)
}

// GetByID returns the volunteer profile with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Volunteer, error) {
	return r.getOne(ctx, id, postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}))
}

// GetForUpdate returns volunteer id and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Volunteer, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, id, q)
}

// GetByUserID returns the volunteer profile of userID.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Volunteer, error) {
	return r.getOne(ctx, userID, postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID}))
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (domain.Volunteer, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Volunteer{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// List returns a page of volunteer profiles matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.VolunteerFilter, page domain.PageRequest) ([]domain.Volunteer, int, error) {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Availability != nil {
		where = append(where, squirrel.Eq{"availability": string(*filter.Availability)})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count volunteers: %w", err)
	}

	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list volunteers: %w", err)
	}
	return toDomainSlice(rows), total, nil
}

// ListByEvent returns a page of the volunteers enrolled in eventID in
// enrollment order.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID, page domain.PageRequest) ([]domain.Volunteer, int, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)
	from := table + " v JOIN event_volunteers ev ON ev.volunteer_id = v.id"
	where := squirrel.Eq{"ev.event_id": eventID}

	total, err := postgres.Count(ctx, db, from, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count event volunteers: %w", err)
	}

	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "v." + c
	}
	q := postgres.Paged(
		postgres.Builder().Select(qualified...).From(from).Where(where).OrderBy("ev.created_at ASC", "v.id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list event volunteers: %w", err)
	}
	return toDomainSlice(rows), total, nil
}

func toDomainSlice(rows []row) []domain.Volunteer {
	out := make([]domain.Volunteer, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}
