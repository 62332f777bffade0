package donation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// Common holds the fields shared by both kinds of donation.
type Common struct {
	RecipientID uuid.UUID
	CampaignID  *uuid.UUID
	Message     *string
	IsAnonymous bool
}

func (c Common) validate() []domain.FieldError {
	var errs []domain.FieldError
	if c.RecipientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipient_id", Message: "required"})
	}
	if c.Message != nil && len(*c.Message) > 2000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	return errs
}

// FinancialInput holds parameters for a money donation. Amounts are in
// cents of Currency.
type FinancialInput struct {
	Common
	AmountCents   int64
	Currency      string
	PaymentMethod string
	TransactionID *string
}

func (i *FinancialInput) normalize() {
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	if i.Currency == "" {
		i.Currency = domain.DefaultCurrency
	}
	i.PaymentMethod = strings.TrimSpace(i.PaymentMethod)
}

// Validate validates the financial donation input.
func (i FinancialInput) Validate() error {
	errs := i.validate()

	if i.AmountCents <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if len(i.Currency) != 3 {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}
	if i.PaymentMethod == "" {
		errs = append(errs, domain.FieldError{Field: "payment_method", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ItemInput holds parameters for an in-kind donation.
type ItemInput struct {
	Common
	ItemName        string
	ItemDescription *string
	ItemQuantity    int
	ItemCategory    domain.ItemCategory
	DeliveryAddress *string
	DeliveryDate    *time.Time
}

func (i *ItemInput) normalize() {
	i.ItemName = strings.TrimSpace(i.ItemName)
}

// Validate validates the item donation input.
func (i ItemInput) Validate() error {
	errs := i.validate()

	if i.ItemName == "" {
		errs = append(errs, domain.FieldError{Field: "item_name", Message: "required"})
	}
	if i.ItemQuantity < 1 {
		errs = append(errs, domain.FieldError{Field: "item_quantity", Message: "must be a positive integer"})
	}
	if !i.ItemCategory.IsValid() {
		errs = append(errs, domain.FieldError{Field: "item_category", Message: "invalid value"})
	}
	if i.DeliveryAddress != nil && strings.TrimSpace(*i.DeliveryAddress) == "" {
		errs = append(errs, domain.FieldError{Field: "delivery_address", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filters for the donation listing.
type ListInput struct {
	Type        *domain.DonationType
	Status      *domain.DonationStatus
	RecipientID *uuid.UUID
	CampaignID  *uuid.UUID
	Page        domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
