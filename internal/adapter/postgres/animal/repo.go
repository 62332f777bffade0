// Package animal implements Animal persistence using PostgreSQL.
package animal

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
	table  = "animals"
	entity = "animal"
)

var columns = []string{
	"id", "name", "type", "breed", "age", "age_unit", "gender", "size", "color",
	"description", "health_status", "is_vaccinated", "is_neutered", "is_special_needs",
	"special_needs_description", "adoption_status", "images", "user_id", "adopted_by",
	"adopted_at", "location", "city", "state", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides animal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new animal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                      uuid.UUID  `db:"id"`
	Name                    string     `db:"name"`
	Type                    string     `db:"type"`
	Breed                   *string    `db:"breed"`
	Age                     *int       `db:"age"`
	AgeUnit                 string     `db:"age_unit"`
	Gender                  string     `db:"gender"`
	Size                    string     `db:"size"`
	Color                   *string    `db:"color"`
	Description             string     `db:"description"`
	HealthStatus            *string    `db:"health_status"`
	IsVaccinated            bool       `db:"is_vaccinated"`
	IsNeutered              bool       `db:"is_neutered"`
	IsSpecialNeeds          bool       `db:"is_special_needs"`
	SpecialNeedsDescription *string    `db:"special_needs_description"`
	AdoptionStatus          string     `db:"adoption_status"`
	Images                  []string   `db:"images"`
	UserID                  uuid.UUID  `db:"user_id"`
	AdoptedBy               *uuid.UUID `db:"adopted_by"`
	AdoptedAt               *time.Time `db:"adopted_at"`
	Location                string     `db:"location"`
	City                    string     `db:"city"`
	State                   string     `db:"state"`
	CreatedAt               time.Time  `db:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Animal {
	return domain.Animal{
		ID:                      r.ID,
		Name:                    r.Name,
		Type:                    r.Type,
		Breed:                   r.Breed,
		Age:                     r.Age,
		AgeUnit:                 domain.AgeUnit(r.AgeUnit),
		Gender:                  domain.Gender(r.Gender),
		Size:                    domain.Size(r.Size),
		Color:                   r.Color,
		Description:             r.Description,
		HealthStatus:            r.HealthStatus,
		IsVaccinated:            r.IsVaccinated,
		IsNeutered:              r.IsNeutered,
		IsSpecialNeeds:          r.IsSpecialNeeds,
		SpecialNeedsDescription: r.SpecialNeedsDescription,
		AdoptionStatus:          domain.AdoptionStatus(r.AdoptionStatus),
		Images:                  postgres.Strings(r.Images),
		UserID:                  r.UserID,
		AdoptedBy:               r.AdoptedBy,
		AdoptedAt:               r.AdoptedAt,
		Location:                r.Location,
		City:                    r.City,
		State:                   r.State,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
	}
}

// mutable returns the columns an owner may change after creation.
func mutable(a domain.Animal) map[string]any {
	return map[string]any{
		"name":                      a.Name,
		"type":                      a.Type,
		"breed":                     a.Breed,
		"age":                       a.Age,
		"age_unit":                  string(a.AgeUnit),
		"gender":                    string(a.Gender),
		"size":                      string(a.Size),
		"color":                     a.Color,
		"description":               a.Description,
		"health_status":             a.HealthStatus,
		"is_vaccinated":             a.IsVaccinated,
		"is_neutered":               a.IsNeutered,
		"is_special_needs":          a.IsSpecialNeeds,
		"special_needs_description": a.SpecialNeedsDescription,
		"location":                  a.Location,
		"city":                      a.City,
		"state":                     a.State,
		"updated_at":                a.UpdatedAt,
	}
}

// Create inserts a new animal.
func (r *Repo) Create(ctx context.Context, a domain.Animal) (domain.Animal, error) {
	values := mutable(a)
	values["id"] = a.ID
	values["adoption_status"] = string(a.AdoptionStatus)
	values["images"] = postgres.Strings(a.Images)
	values["user_id"] = a.UserID
	values["adopted_by"] = a.AdoptedBy
	values["adopted_at"] = a.AdoptedAt
	values["created_at"] = a.CreatedAt

	return r.getOne(ctx, a.ID, postgres.Builder().Insert(table).SetMap(values).Suffix(returning))
}

// Update persists the owner-editable fields of a.
func (r *Repo) Update(ctx context.Context, a domain.Animal) (domain.Animal, error) {
	q := postgres.Builder().Update(table).SetMap(mutable(a)).Where(squirrel.Eq{"id": a.ID}).Suffix(returning)
	return r.getOne(ctx, a.ID, q)
}

// UpdateAdoption persists the adoption status, adopter and adoption time of a.
func (r *Repo) UpdateAdoption(ctx context.Context, a domain.Animal) (domain.Animal, error) {
	q := postgres.Builder().Update(table).SetMap(map[string]any{
		"adoption_status": string(a.AdoptionStatus),
		"adopted_by":      a.AdoptedBy,
		"adopted_at":      a.AdoptedAt,
		"updated_at":      a.UpdatedAt,
	}).Where(squirrel.Eq{"id": a.ID}).Suffix(returning)
	return r.getOne(ctx, a.ID, q)
}

// AppendImages appends urls to the images of animal id, preserving order.
func (r *Repo) AppendImages(ctx context.Context, id uuid.UUID, urls []string, now time.Time) (domain.Animal, error) {
	q := postgres.Builder().Update(table).
		Set("images", squirrel.Expr("images || ?::text[]", postgres.Strings(urls))).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	return r.getOne(ctx, id, q)
}

// GetByID returns the animal with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Animal, error) {
	return r.getOne(ctx, id, postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}))
}

// GetForUpdate returns animal id and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Animal, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, id, q)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (domain.Animal, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Animal{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// List returns a page of animals matching filter. Adopted animals are
// ordered by adoption time, everything else newest first.
func (r *Repo) List(ctx context.Context, filter domain.AnimalFilter, page domain.PageRequest) ([]domain.Animal, int, error) {
	where := squirrel.And{}
	if filter.Type != nil {
		where = append(where, squirrel.Eq{"type": *filter.Type})
	}
	if filter.Size != nil {
		where = append(where, squirrel.Eq{"size": string(*filter.Size)})
	}
	if filter.Gender != nil {
		where = append(where, squirrel.Eq{"gender": string(*filter.Gender)})
	}
	if filter.City != nil {
		where = append(where, squirrel.Eq{"city": *filter.City})
	}
	if filter.State != nil {
		where = append(where, squirrel.Eq{"state": *filter.State})
	}
	if filter.AdoptionStatus != nil {
		where = append(where, squirrel.Eq{"adoption_status": string(*filter.AdoptionStatus)})
	}
	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.AdoptedBy != nil {
		where = append(where, squirrel.Eq{"adopted_by": *filter.AdoptedBy})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count animals: %w", err)
	}

	order := "created_at DESC"
	if filter.AdoptedBy != nil {
		order = "adopted_at DESC"
	}
	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy(order, "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list animals: %w", err)
	}

	out := make([]domain.Animal, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, total, nil
}
