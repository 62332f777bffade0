package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/donation"
)

//go:generate moq -out donation_service_mock_test.go -pkg rest -rm . donationService

type donationService interface {
	CreateFinancial(ctx context.Context, input donation.FinancialInput) (domain.Donation, error)
	CreateItem(ctx context.Context, input donation.ItemInput) (domain.Donation, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Donation, error)
	List(ctx context.Context, input donation.ListInput) (domain.Page[domain.Donation], error)
	ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Donation], error)
	ListReceived(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Donation], error)
	TransitionStatus(ctx context.Context, id uuid.UUID, status domain.DonationStatus) (domain.Donation, error)
	AttachReceipt(ctx context.Context, id uuid.UUID, file io.Reader) (domain.Donation, error)
}

// DonationHandler serves donation endpoints.
type DonationHandler struct {
	base
	svc     donationService
	uploads UploadLimits
	metrics recorder
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(svc donationService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *DonationHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &DonationHandler{base: newBase(logger, "donations", "donation"), svc: svc, uploads: uploads, metrics: metrics}
}

type donationCommon struct {
	RecipientID uuid.UUID  `json:"recipientId"`
	CampaignID  *uuid.UUID `json:"campaignId"`
	Message     *string    `json:"message"`
	IsAnonymous bool       `json:"isAnonymous"`
}

func (c donationCommon) toInput() donation.Common {
	return donation.Common{
		RecipientID: c.RecipientID,
		CampaignID:  c.CampaignID,
		Message:     c.Message,
		IsAnonymous: c.IsAnonymous,
	}
}

type financialRequest struct {
	donationCommon
	AmountCents   int64   `json:"amountCents"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID *string `json:"transactionId"`
}

type itemRequest struct {
	donationCommon
	ItemName        string     `json:"itemName"`
	ItemDescription *string    `json:"itemDescription"`
	ItemQuantity    int        `json:"itemQuantity"`
	ItemCategory    string     `json:"itemCategory"`
	DeliveryAddress *string    `json:"deliveryAddress"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
}

type donationStatusRequest struct {
	Status string `json:"status"`
}

// CreateFinancial handles POST /donations/financial.
func (h *DonationHandler) CreateFinancial(w http.ResponseWriter, r *http.Request) {
	var req financialRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	d, err := h.svc.CreateFinancial(r.Context(), donation.FinancialInput{
		Common:        req.toInput(),
		AmountCents:   req.AmountCents,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err == nil {
		h.metrics.DonationCreated(d.Type.String())
	}
	h.respond(w, r, http.StatusCreated, d, err)
}

// CreateItem handles POST /donations/item.
func (h *DonationHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	d, err := h.svc.CreateItem(r.Context(), donation.ItemInput{
		Common:          req.toInput(),
		ItemName:        req.ItemName,
		ItemDescription: req.ItemDescription,
		ItemQuantity:    req.ItemQuantity,
		ItemCategory:    domain.ItemCategory(req.ItemCategory),
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
	})
	if err == nil {
		h.metrics.DonationCreated(d.Type.String())
	}
	h.respond(w, r, http.StatusCreated, d, err)
}

// Get handles GET /donations/{id}.
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, d, err)
}

// List handles GET /donations.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := donation.ListInput{
		Type:        enum[domain.DonationType](q.str("type")),
		Status:      enum[domain.DonationStatus](q.str("status")),
		RecipientID: q.uuid("recipientId"),
		CampaignID:  q.uuid("campaignId"),
		Page:        q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	h.respondPage(w, r, page, err)
}

// ListMine handles GET /donations/user/me.
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListMine(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// ListReceived handles GET /donations/ong/me.
func (h *DonationHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListReceived(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// TransitionStatus handles PATCH /donations/{id}/status.
func (h *DonationHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req donationStatusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	d, err := h.svc.TransitionStatus(r.Context(), id, domain.DonationStatus(req.Status))
	h.respond(w, r, http.StatusOK, d, err)
}

// AttachReceipt handles POST /donations/{id}/receipt.
func (h *DonationHandler) AttachReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	files, err := h.uploads.readFile(w, r, "receipt")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer files.Close()

	d, err := h.svc.AttachReceipt(r.Context(), id, files.readers()[0])
	if err == nil {
		h.metrics.FilesUploaded("donation", 1)
	}
	h.respond(w, r, http.StatusOK, d, err)
}

func (h *DonationHandler) respond(w http.ResponseWriter, r *http.Request, status int, d domain.Donation, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	users, events := donationRefs(d)
	s, err := loadSummaries(r.Context(), users, events)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, toDonation(d, s))
}

func (h *DonationHandler) respondPage(w http.ResponseWriter, r *http.Request, page domain.Page[domain.Donation], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	users, events := donationRefs(page.Items...)
	s, err := loadSummaries(r.Context(), users, events)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, func(d domain.Donation) donationDTO {
		return toDonation(d, s)
	})))
}
