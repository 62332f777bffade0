// Package event implements Event persistence and volunteer enrollment using
// PostgreSQL.
package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const (
	table       = "events"
	enrollments = "event_volunteers"
	entity      = "event"
)

var columns = []string{
	"id", "title", "description", "event_type", "start_date", "end_date", "location",
	"address", "city", "state", "latitude", "longitude", "image", "contact_email",
	"contact_phone", "max_participants", "current_participants", "is_active", "user_id",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                  uuid.UUID  `db:"id"`
	Title               string     `db:"title"`
	Description         string     `db:"description"`
	EventType           string     `db:"event_type"`
	StartDate           time.Time  `db:"start_date"`
	EndDate             *time.Time `db:"end_date"`
	Location            string     `db:"location"`
	Address             string     `db:"address"`
	City                string     `db:"city"`
	State               string     `db:"state"`
	Latitude            *float64   `db:"latitude"`
	Longitude           *float64   `db:"longitude"`
	Image               *string    `db:"image"`
	ContactEmail        *string    `db:"contact_email"`
	ContactPhone        *string    `db:"contact_phone"`
	MaxParticipants     *int       `db:"max_participants"`
	CurrentParticipants int        `db:"current_participants"`
	IsActive            bool       `db:"is_active"`
	UserID              uuid.UUID  `db:"user_id"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Event {
	return domain.Event{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		EventType:           domain.EventType(r.EventType),
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Location:            r.Location,
		Address:             r.Address,
		City:                r.City,
		State:               r.State,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		Image:               r.Image,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		MaxParticipants:     r.MaxParticipants,
		CurrentParticipants: r.CurrentParticipants,
		IsActive:            r.IsActive,
		UserID:              r.UserID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func mutable(e domain.Event) map[string]any {
	return map[string]any{
		"title":            e.Title,
		"description":      e.Description,
		"event_type":       string(e.EventType),
		"start_date":       e.StartDate,
		"end_date":         e.EndDate,
		"location":         e.Location,
		"address":          e.Address,
		"city":             e.City,
		"state":            e.State,
		"latitude":         e.Latitude,
		"longitude":        e.Longitude,
		"image":            e.Image,
		"contact_email":    e.ContactEmail,
		"contact_phone":    e.ContactPhone,
		"max_participants": e.MaxParticipants,
		"is_active":        e.IsActive,
		"updated_at":       e.UpdatedAt,
	}
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	values := mutable(e)
	values["id"] = e.ID
	values["current_participants"] = e.CurrentParticipants
	values["user_id"] = e.UserID
	values["created_at"] = e.CreatedAt

	return r.getOne(ctx, e.ID, postgres.Builder().Insert(table).SetMap(values).Suffix(returning))
}

// Update persists the organizer-editable fields of e. Lowering
// max_participants below the current count fails the participants check.
func (r *Repo) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	q := postgres.Builder().Update(table).SetMap(mutable(e)).Where(squirrel.Eq{"id": e.ID}).Suffix(returning)
	return r.getOne(ctx, e.ID, q)
}

// GetByID returns the event with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return r.getOne(ctx, id, postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}))
}

// GetForUpdate returns event id and locks its row until the surrounding
// transaction ends. Concurrent enrollments serialize on this lock.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, id, q)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (domain.Event, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Event{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// GetByIDs returns the events with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	if len(ids) == 0 {
		return []domain.Event{}, nil
	}

	var rows []row
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("get events by ids: %w", err)
	}
	return toDomainSlice(rows), nil
}

// List returns a page of events matching filter ordered by start date.
func (r *Repo) List(ctx context.Context, filter domain.EventFilter, page domain.PageRequest) ([]domain.Event, int, error) {
	where := squirrel.And{}
	if filter.ActiveOnly {
		where = append(where, squirrel.Eq{"is_active": true})
	}
	if filter.EventType != nil {
		where = append(where, squirrel.Eq{"event_type": string(*filter.EventType)})
	}
	if filter.City != nil {
		where = append(where, squirrel.Eq{"city": *filter.City})
	}
	if filter.State != nil {
		where = append(where, squirrel.Eq{"state": *filter.State})
	}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"start_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"end_date": *filter.To})
	}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("start_date ASC", "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return toDomainSlice(rows), total, nil
}

// ListByVolunteer returns a page of the events volunteerID is enrolled in.
func (r *Repo) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, page domain.PageRequest) ([]domain.Event, int, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)
	where := squirrel.Eq{"ev.volunteer_id": volunteerID}
	from := table + " e JOIN " + enrollments + " ev ON ev.event_id = e.id"

	total, err := postgres.Count(ctx, db, from, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count volunteer events: %w", err)
	}

	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "e." + c
	}
	q := postgres.Paged(
		postgres.Builder().Select(qualified...).From(from).Where(where).OrderBy("e.start_date ASC", "e.id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list volunteer events: %w", err)
	}
	return toDomainSlice(rows), total, nil
}


// AddVolunteer records the enrollment of volunteerID in eventID. A second
// enrollment of the same pair returns domain.ErrAlreadyEnrolled.
func (r *Repo) AddVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID, now time.Time) error {
	q := postgres.Builder().Insert(enrollments).
		Columns("event_id", "volunteer_id", "created_at").
		Values(eventID, volunteerID, now).
		Suffix("ON CONFLICT (event_id, volunteer_id) DO NOTHING")

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrAlreadyEnrolled)
	}
	return nil
}

// IncrementParticipants bumps the participant count of eventID by one and
// returns the new count. It fails with domain.ErrCapacityExceeded when the
// event is already full.
func (r *Repo) IncrementParticipants(ctx context.Context, eventID uuid.UUID, now time.Time) (int, error) {
	query, args, err := postgres.Builder().Update(table).
		Set("current_participants", squirrel.Expr("current_participants + 1")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": eventID}).
		Where("(max_participants IS NULL OR current_participants < max_participants)").
		Suffix("RETURNING current_participants").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, fmt.Errorf("event %s: %w", eventID, domain.ErrCapacityExceeded)
	case err != nil:
		return 0, postgres.MapError(err, entity, eventID)
	}
	return count, nil
}

// DeactivateEnded marks active events that ended before cutoff as inactive.
// Events without an end date are judged by their start date.
func (r *Repo) DeactivateEnded(ctx context.Context, cutoff, now time.Time) (int64, error) {
	q := postgres.Builder().Update(table).
		Set("is_active", false).
		Set("updated_at", now).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Lt{"COALESCE(end_date, start_date)": cutoff})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, fmt.Errorf("deactivate ended events: %w", err)
	}
	return tag.RowsAffected(), nil
}

func toDomainSlice(rows []row) []domain.Event {
	out := make([]domain.Event, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}
