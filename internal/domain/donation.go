package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency applies to financial donations that omit one.
const DefaultCurrency = "BRL"

// Donation is a financial or in-kind contribution to an ONG. Financial
// donations carry Amount fields, item donations carry Item fields.
// DonorID is nil exactly when the donor asked to stay anonymous.
type Donation struct {
	ID              uuid.UUID
	Type            DonationType
	AmountCents     *int64
	Currency        *string
	PaymentMethod   *string
	TransactionID   *string
	ItemName        *string
	ItemDescription *string
	ItemQuantity    *int
	ItemCategory    *ItemCategory
	Status          DonationStatus
	DonorID         *uuid.UUID
	RecipientID     uuid.UUID
	CampaignID      *uuid.UUID
	Message         *string
	IsAnonymous     bool
	DeliveryAddress *string
	DeliveryDate    *time.Time
	ReceiptImage    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DonationFilter holds exact-match filters for donation listings.
type DonationFilter struct {
	Type        *DonationType
	Status      *DonationStatus
	RecipientID *uuid.UUID
	CampaignID  *uuid.UUID
	DonorID     *uuid.UUID
}
