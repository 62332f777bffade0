// Package user implements the Identity Store using PostgreSQL.
package user

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
	table         = "users"
	entity        = "user"
	cnpjIndexName = "ux_users_cnpj"
)

var columns = []string{
	"id", "name", "email", "password_hash", "role", "is_active", "is_verified",
	"phone", "address", "city", "state", "postal_code", "bio", "profile_image",
	"cnpj", "description", "founding_date", "website", "social_media",
	"responsible_name", "responsible_phone", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID         `db:"id"`
	Name             string            `db:"name"`
	Email            string            `db:"email"`
	PasswordHash     string            `db:"password_hash"`
	Role             string            `db:"role"`
	IsActive         bool              `db:"is_active"`
	IsVerified       bool              `db:"is_verified"`
	Phone            *string           `db:"phone"`
	Address          *string           `db:"address"`
	City             *string           `db:"city"`
	State            *string           `db:"state"`
	PostalCode       *string           `db:"postal_code"`
	Bio              *string           `db:"bio"`
	ProfileImage     *string           `db:"profile_image"`
	CNPJ             *string           `db:"cnpj"`
	Description      *string           `db:"description"`
	FoundingDate     *time.Time        `db:"founding_date"`
	Website          *string           `db:"website"`
	SocialMedia      map[string]string `db:"social_media"`
	ResponsibleName  *string           `db:"responsible_name"`
	ResponsiblePhone *string           `db:"responsible_phone"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		IsActive:     r.IsActive,
		IsVerified:   r.IsVerified,
		Profile: domain.UserProfile{
			Phone:            r.Phone,
			Address:          r.Address,
			City:             r.City,
			State:            r.State,
			PostalCode:       r.PostalCode,
			Bio:              r.Bio,
			ProfileImage:     r.ProfileImage,
			CNPJ:             r.CNPJ,
			Description:      r.Description,
			FoundingDate:     r.FoundingDate,
			Website:          r.Website,
			SocialMedia:      r.SocialMedia,
			ResponsibleName:  r.ResponsibleName,
			ResponsiblePhone: r.ResponsiblePhone,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func profileColumns(p domain.UserProfile) map[string]any {
	var social any
	if len(p.SocialMedia) > 0 {
		social = p.SocialMedia
	}
	return map[string]any{
		"phone":             p.Phone,
		"address":           p.Address,
		"city":              p.City,
		"state":             p.State,
		"postal_code":       p.PostalCode,
		"bio":               p.Bio,
		"profile_image":     p.ProfileImage,
		"cnpj":              p.CNPJ,
		"description":       p.Description,
		"founding_date":     p.FoundingDate,
		"website":           p.Website,
		"social_media":      social,
		"responsible_name":  p.ResponsibleName,
		"responsible_phone": p.ResponsiblePhone,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A duplicate email maps to domain.ErrAlreadyExists;
// a duplicate CNPJ is reported as a validation error on the cnpj field.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	values := profileColumns(u.Profile)
	values["id"] = u.ID
	values["name"] = u.Name
	values["email"] = u.Email
	values["password_hash"] = u.PasswordHash
	values["role"] = string(u.Role)
	values["is_active"] = u.IsActive
	values["is_verified"] = u.IsVerified
	values["created_at"] = u.CreatedAt
	values["updated_at"] = u.UpdatedAt

	q := postgres.Builder().Insert(table).SetMap(values).Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		if postgres.IsConstraint(err, cnpjIndexName) {
			return domain.User{}, domain.NewValidationError("cnpj", "already registered")
		}
		return domain.User{}, postgres.MapError(err, entity, u.ID)
	}
	return out.toDomain(), nil
}

// UpdateProfile overwrites the name and every profile field of user id.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name string, p domain.UserProfile, now time.Time) (domain.User, error) {
	q := postgres.Builder().Update(table).
		SetMap(profileColumns(p)).
		Set("name", name).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		if postgres.IsConstraint(err, cnpjIndexName) {
			return domain.User{}, domain.NewValidationError("cnpj", "already registered")
		}
		return domain.User{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// UpdatePassword replaces the password hash of user id.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string, now time.Time) error {
	return r.updateColumns(ctx, id, map[string]any{"password_hash": hash, "updated_at": now})
}

// SetActive toggles whether user id may authenticate.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (domain.User, error) {
	return r.updateReturning(ctx, id, map[string]any{"is_active": active, "updated_at": now})
}

// SetRole changes the role of user id.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.Role, now time.Time) (domain.User, error) {
	return r.updateReturning(ctx, id, map[string]any{"role": string(role), "updated_at": now})
}

func (r *Repo) updateReturning(ctx context.Context, id uuid.UUID, values map[string]any) (domain.User, error) {
	q := postgres.Builder().Update(table).SetMap(values).Where(squirrel.Eq{"id": id}).Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.User{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

func (r *Repo) updateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	q := postgres.Builder().Update(table).SetMap(values).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the user with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.User{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// GetByEmail returns the user with the given (lower-cased) email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"email": strings.ToLower(email)})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.User{}, postgres.MapError(err, entity, uuid.Nil)
	}
	return out.toDomain(), nil
}

// GetByIDs returns the users among ids that exist, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	return toDomainSlice(rows), nil
}

// List returns a page of users matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.UserFilter, page domain.PageRequest) ([]domain.User, int, error) {
	where := squirrel.And{}
	if filter.Role != nil {
		where = append(where, squirrel.Eq{"role": string(*filter.Role)})
	}
	if filter.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *filter.IsActive})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return toDomainSlice(rows), total, nil
}

func toDomainSlice(rows []row) []domain.User {
	out := make([]domain.User, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
