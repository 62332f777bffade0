package donation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// CreateFinancial records a money donation from the caller.
func (s *Service) CreateFinancial(ctx context.Context, input FinancialInput) (domain.Donation, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationCreate); err != nil {
		return domain.Donation{}, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Donation{}, err
	}

	amount, currency := input.AmountCents, input.Currency
	payment := input.PaymentMethod
	d := s.draft(p, input.Common, domain.DonationFinancial)
	d.AmountCents = &amount
	d.Currency = &currency
	d.PaymentMethod = &payment
	d.TransactionID = input.TransactionID

	created, err := s.create(ctx, d)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation.CreateFinancial: %w", err)
	}
	return created, nil
}

// CreateItem records an in-kind donation from the caller.
func (s *Service) CreateItem(ctx context.Context, input ItemInput) (domain.Donation, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationCreate); err != nil {
		return domain.Donation{}, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Donation{}, err
	}

	name, qty, category := input.ItemName, input.ItemQuantity, input.ItemCategory
	d := s.draft(p, input.Common, domain.DonationItem)
	d.ItemName = &name
	d.ItemDescription = input.ItemDescription
	d.ItemQuantity = &qty
	d.ItemCategory = &category
	d.DeliveryAddress = input.DeliveryAddress
	d.DeliveryDate = input.DeliveryDate

	created, err := s.create(ctx, d)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation.CreateItem: %w", err)
	}
	return created, nil
}

// draft builds a pending donation from the caller. Anonymous donations
// carry no donor.
func (s *Service) draft(p domain.Principal, c Common, kind domain.DonationType) domain.Donation {
	now := s.now()
	d := domain.Donation{
		ID:          uuid.New(),
		Type:        kind,
		Status:      domain.DonationStatusPending,
		RecipientID: c.RecipientID,
		CampaignID:  c.CampaignID,
		Message:     c.Message,
		IsAnonymous: c.IsAnonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !c.IsAnonymous {
		d.DonorID = p.ActorID()
	}
	return d
}

// create checks the recipient and campaign references and inserts d.
func (s *Service) create(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	var created domain.Donation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkRecipient(ctx, d.RecipientID); err != nil {
			return err
		}
		if d.CampaignID != nil {
			if _, err := s.events.GetByID(ctx, *d.CampaignID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("campaign_id", "campaign not found")
				}
				return err
			}
		}

		var err error
		created, err = s.donations.Create(ctx, d)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     created.DonorID,
			EntityType: domain.EntityTypeDonation,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"type": string(d.Type), "recipient_id": d.RecipientID.String()},
			CreatedAt:  d.CreatedAt,
		})
	})
	if err != nil {
		return domain.Donation{}, err
	}

	s.log.InfoContext(ctx, "donation created",
		slog.String("donation_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("recipient_id", created.RecipientID.String()),
		slog.Bool("anonymous", created.IsAnonymous))
	return created, nil
}

func (s *Service) checkRecipient(ctx context.Context, id uuid.UUID) error {
	recipient, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("recipient_id", "recipient not found")
	}
	if err != nil {
		return err
	}
	if recipient.Role != domain.RoleOng {
		return domain.NewValidationError("recipient_id", "recipient must be an ONG")
	}
	if !recipient.IsActive {
		return domain.NewValidationError("recipient_id", "recipient is not active")
	}
	return nil
}

// Get returns a donation visible to its donor, its recipient or an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Donation, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Donation{}, err
	}

	d, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation.Get: %w", err)
	}
	if gate.RequireOwnership(p, d, domain.DonationRecipient) != nil {
		if err := gate.RequireOwnership(p, d, domain.DonationDonor); err != nil {
			return domain.Donation{}, err
		}
	}
	return d, nil
}

// List returns a page of donations. ONGs only see donations addressed to
// them; admins see all.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Donation], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationList); err != nil {
		return domain.Page[domain.Donation]{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Donation]{}, err
	}

	filter := domain.DonationFilter{
		Type:        input.Type,
		Status:      input.Status,
		RecipientID: input.RecipientID,
		CampaignID:  input.CampaignID,
	}
	if !p.IsAdmin() {
		filter.RecipientID = &p.UserID
	}
	return s.list(ctx, filter, input.Page)
}

// ListMine returns the donations made by the caller. Anonymous donations
// are not linked to the donor and do not appear.
func (s *Service) ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Donation], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationListMine); err != nil {
		return domain.Page[domain.Donation]{}, err
	}
	return s.list(ctx, domain.DonationFilter{DonorID: &p.UserID}, page)
}

// ListReceived returns the donations addressed to the calling ONG or admin.
func (s *Service) ListReceived(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Donation], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationListReceived); err != nil {
		return domain.Page[domain.Donation]{}, err
	}
	return s.list(ctx, domain.DonationFilter{RecipientID: &p.UserID}, page)
}

func (s *Service) list(ctx context.Context, filter domain.DonationFilter, req domain.PageRequest) (domain.Page[domain.Donation], error) {
	page := s.paging.Apply(req)
	donations, total, err := s.donations.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Donation]{}, fmt.Errorf("donation.List: %w", err)
	}
	return domain.NewPage(donations, total, page), nil
}

// TransitionStatus moves a donation to status. Only the recipient ONG or an
// admin may do so.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, status domain.DonationStatus) (domain.Donation, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpDonationTransition); err != nil {
		return domain.Donation{}, err
	}
	if !status.IsValid() {
		return domain.Donation{}, domain.NewValidationError("status", "must be pending, confirmed, delivered or cancelled")
	}

	var updated domain.Donation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		d, err := s.donations.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := gate.RequireOwnership(p, d, domain.DonationRecipient); err != nil {
			return err
		}

		from := d.Status
		now := s.now()
		d.Status = status
		d.UpdatedAt = now

		updated, err = s.donations.UpdateStatus(ctx, d)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeDonation,
			EntityID:   id,
			Action:     domain.AuditActionStatus,
			Changes:    map[string]any{"from": string(from), "to": string(status)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation.TransitionStatus: %w", err)
	}

	s.log.InfoContext(ctx, "donation status changed",
		slog.String("donation_id", id.String()),
		slog.String("status", status.String()))
	return updated, nil
}

// AttachReceipt stores a payment or delivery receipt for a donation. Only
// the donor or an admin may attach one.
func (s *Service) AttachReceipt(ctx context.Context, id uuid.UUID, file io.Reader) (domain.Donation, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Donation{}, err
	}

	d, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation.AttachReceipt: %w", err)
	}
	if err := gate.RequireOwnership(p, d, domain.DonationDonor); err != nil {
		return domain.Donation{}, err
	}
	if file == nil {
		return domain.Donation{}, domain.NewValidationError("receipt", "required")
	}

	batch, err := upload.Files(ctx, s.blobs, "receipts/"+id.String(), "receipt", []io.Reader{file}, 1)
	if err != nil {
		return domain.Donation{}, err
	}
	receipt := batch.URLs()[0]

	var updated domain.Donation
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.donations.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		now := s.now()
		cur.ReceiptImage = &receipt
		cur.UpdatedAt = now

		updated, err = s.donations.UpdateStatus(ctx, cur)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeDonation,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"receipt_image": receipt},
			CreatedAt:  now,
		})
	})
	if err != nil {
		batch.Discard(ctx)
		return domain.Donation{}, fmt.Errorf("donation.AttachReceipt: %w", err)
	}
	return updated, nil
}
