// Package donation implements Donation persistence using PostgreSQL.
package donation

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
	table  = "donations"
	entity = "donation"
)

var columns = []string{
	"id", "type", "amount_cents", "currency", "payment_method", "transaction_id",
	"item_name", "item_description", "item_quantity", "item_category", "status",
	"donor_id", "recipient_id", "campaign_id", "message", "is_anonymous",
	"delivery_address", "delivery_date", "receipt_image", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides donation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new donation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID  `db:"id"`
	Type            string     `db:"type"`
	AmountCents     *int64     `db:"amount_cents"`
	Currency        *string    `db:"currency"`
	PaymentMethod   *string    `db:"payment_method"`
	TransactionID   *string    `db:"transaction_id"`
	ItemName        *string    `db:"item_name"`
	ItemDescription *string    `db:"item_description"`
	ItemQuantity    *int       `db:"item_quantity"`
	ItemCategory    *string    `db:"item_category"`
	Status          string     `db:"status"`
	DonorID         *uuid.UUID `db:"donor_id"`
	RecipientID     uuid.UUID  `db:"recipient_id"`
	CampaignID      *uuid.UUID `db:"campaign_id"`
	Message         *string    `db:"message"`
	IsAnonymous     bool       `db:"is_anonymous"`
	DeliveryAddress *string    `db:"delivery_address"`
	DeliveryDate    *time.Time `db:"delivery_date"`
	ReceiptImage    *string    `db:"receipt_image"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Donation {
	return domain.Donation{
		ID:              r.ID,
		Type:            domain.DonationType(r.Type),
		AmountCents:     r.AmountCents,
		Currency:        r.Currency,
		PaymentMethod:   r.PaymentMethod,
		TransactionID:   r.TransactionID,
		ItemName:        r.ItemName,
		ItemDescription: r.ItemDescription,
		ItemQuantity:    r.ItemQuantity,
		ItemCategory:    postgres.ToEnumPtr[domain.ItemCategory](r.ItemCategory),
		Status:          domain.DonationStatus(r.Status),
		DonorID:         r.DonorID,
		RecipientID:     r.RecipientID,
		CampaignID:      r.CampaignID,
		Message:         r.Message,
		IsAnonymous:     r.IsAnonymous,
		DeliveryAddress: r.DeliveryAddress,
		DeliveryDate:    r.DeliveryDate,
		ReceiptImage:    r.ReceiptImage,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Create inserts a new donation.
func (r *Repo) Create(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	q := postgres.Builder().Insert(table).SetMap(map[string]any{
		"id":               d.ID,
		"type":             string(d.Type),
		"amount_cents":     d.AmountCents,
		"currency":         d.Currency,
		"payment_method":   d.PaymentMethod,
		"transaction_id":   d.TransactionID,
		"item_name":        d.ItemName,
		"item_description": d.ItemDescription,
		"item_quantity":    d.ItemQuantity,
		"item_category":    postgres.EnumPtr(d.ItemCategory),
		"status":           string(d.Status),
		"donor_id":         d.DonorID,
		"recipient_id":     d.RecipientID,
		"campaign_id":      d.CampaignID,
		"message":          d.Message,
		"is_anonymous":     d.IsAnonymous,
		"delivery_address": d.DeliveryAddress,
		"delivery_date":    d.DeliveryDate,
		"receipt_image":    d.ReceiptImage,
		"created_at":       d.CreatedAt,
		"updated_at":       d.UpdatedAt,
	}).Suffix(returning)
	return r.getOne(ctx, d.ID, q)
}

// UpdateStatus persists the status and receipt of d.
func (r *Repo) UpdateStatus(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	q := postgres.Builder().Update(table).SetMap(map[string]any{
		"status":        string(d.Status),
		"receipt_image": d.ReceiptImage,
		"updated_at":    d.UpdatedAt,
	}).Where(squirrel.Eq{"id": d.ID}).Suffix(returning)
	return r.getOne(ctx, d.ID, q)
}

// GetByID returns the donation with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Donation, error) {
	return r.getOne(ctx, id, postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}))
}

// GetForUpdate returns donation id and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Donation, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, id, q)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, q squirrel.Sqlizer) (domain.Donation, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return domain.Donation{}, postgres.MapError(err, entity, id)
	}
	return out.toDomain(), nil
}

// List returns a page of donations matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.DonationFilter, page domain.PageRequest) ([]domain.Donation, int, error) {
	where := squirrel.And{}
	if filter.Type != nil {
		where = append(where, squirrel.Eq{"type": string(*filter.Type)})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.RecipientID != nil {
		where = append(where, squirrel.Eq{"recipient_id": *filter.RecipientID})
	}
	if filter.CampaignID != nil {
		where = append(where, squirrel.Eq{"campaign_id": *filter.CampaignID})
	}
	if filter.DonorID != nil {
		where = append(where, squirrel.Eq{"donor_id": *filter.DonorID})
	}

	db := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, db, table, where)
	if err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}

	q := postgres.Paged(
		postgres.Builder().Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id"),
		page.Page, page.PageSize,
	)

	var rows []row
	if err := postgres.Select(ctx, db, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}

	out := make([]domain.Donation, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, total, nil
}
