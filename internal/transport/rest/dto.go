package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/dataloader"
)

type userSummaryDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Phone *string   `json:"phone,omitempty"`
	City  *string   `json:"city,omitempty"`
	State *string   `json:"state,omitempty"`
}

type eventSummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	EventType string    `json:"eventType"`
	StartDate time.Time `json:"startDate"`
}

// summaries holds the embedded user and event projections of one response.
type summaries struct {
	users  map[uuid.UUID]domain.UserSummary
	events map[uuid.UUID]domain.EventSummary
}

func (s summaries) user(id *uuid.UUID) *userSummaryDTO {
	if id == nil {
		return nil
	}
	u, ok := s.users[*id]
	if !ok {
		return nil
	}
	return &userSummaryDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
		Phone: u.Phone,
		City:  u.City,
		State: u.State,
	}
}

func (s summaries) event(id *uuid.UUID) *eventSummaryDTO {
	if id == nil {
		return nil
	}
	e, ok := s.events[*id]
	if !ok {
		return nil
	}
	return &eventSummaryDTO{ID: e.ID, Title: e.Title, EventType: e.EventType.String(), StartDate: e.StartDate}
}

// loadSummaries resolves the given user and event ids through the request's
// DataLoaders. Unknown ids are simply absent from the result.
func loadSummaries(ctx context.Context, userIDs, eventIDs []uuid.UUID) (summaries, error) {
	users, err := dataloader.Users(ctx, userIDs)
	if err != nil {
		return summaries{}, err
	}
	events, err := dataloader.Events(ctx, eventIDs)
	if err != nil {
		return summaries{}, err
	}
	return summaries{users: users, events: events}, nil
}

func refs(ids ...*uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}

func ref(id uuid.UUID) *uuid.UUID { return &id }

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userDTO struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Role             string            `json:"role"`
	IsActive         bool              `json:"isActive"`
	IsVerified       bool              `json:"isVerified"`
	Phone            *string           `json:"phone,omitempty"`
	Address          *string           `json:"address,omitempty"`
	City             *string           `json:"city,omitempty"`
	State            *string           `json:"state,omitempty"`
	PostalCode       *string           `json:"postalCode,omitempty"`
	Bio              *string           `json:"bio,omitempty"`
	ProfileImage     *string           `json:"profileImage,omitempty"`
	CNPJ             *string           `json:"cnpj,omitempty"`
	Description      *string           `json:"description,omitempty"`
	FoundingDate     *time.Time        `json:"foundingDate,omitempty"`
	Website          *string           `json:"website,omitempty"`
	SocialMedia      map[string]string `json:"socialMedia,omitempty"`
	ResponsibleName  *string           `json:"responsibleName,omitempty"`
	ResponsiblePhone *string           `json:"responsiblePhone,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// toUser never exposes the password hash.
func toUser(u domain.User) userDTO {
	p := u.Profile
	return userDTO{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role.String(),
		IsActive:         u.IsActive,
		IsVerified:       u.IsVerified,
		Phone:            p.Phone,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		PostalCode:       p.PostalCode,
		Bio:              p.Bio,
		ProfileImage:     p.ProfileImage,
		CNPJ:             p.CNPJ,
		Description:      p.Description,
		FoundingDate:     p.FoundingDate,
		Website:          p.Website,
		SocialMedia:      p.SocialMedia,
		ResponsibleName:  p.ResponsibleName,
		ResponsiblePhone: p.ResponsiblePhone,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Animals
// ---------------------------------------------------------------------------

type animalDTO struct {
	ID                      uuid.UUID       `json:"id"`
	Name                    string          `json:"name"`
	Type                    string          `json:"type"`
	Breed                   *string         `json:"breed,omitempty"`
	Age                     *int            `json:"age,omitempty"`
	AgeUnit                 string          `json:"ageUnit"`
	Gender                  string          `json:"gender"`
	Size                    string          `json:"size"`
	Color                   *string         `json:"color,omitempty"`
	Description             string          `json:"description"`
	HealthStatus            *string         `json:"healthStatus,omitempty"`
	IsVaccinated            bool            `json:"isVaccinated"`
	IsNeutered              bool            `json:"isNeutered"`
	IsSpecialNeeds          bool            `json:"isSpecialNeeds"`
	SpecialNeedsDescription *string         `json:"specialNeedsDescription,omitempty"`
	AdoptionStatus          string          `json:"adoptionStatus"`
	Images                  []string        `json:"images"`
	UserID                  uuid.UUID       `json:"userId"`
	Owner                   *userSummaryDTO `json:"owner,omitempty"`
	AdoptedBy               *uuid.UUID      `json:"adoptedBy"`
	Adopter                 *userSummaryDTO `json:"adopter,omitempty"`
	AdoptedAt               *time.Time      `json:"adoptedAt"`
	Location                string          `json:"location"`
	City                    string          `json:"city"`
	State                   string          `json:"state"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

func animalRefs(as ...domain.Animal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2*len(as))
	for _, a := range as {
		ids = append(ids, refs(ref(a.UserID), a.AdoptedBy)...)
	}
	return ids
}

func toAnimal(a domain.Animal, s summaries) animalDTO {
	return animalDTO{
		ID:                      a.ID,
		Name:                    a.Name,
		Type:                    a.Type,
		Breed:                   a.Breed,
		Age:                     a.Age,
		AgeUnit:                 a.AgeUnit.String(),
		Gender:                  a.Gender.String(),
		Size:                    a.Size.String(),
		Color:                   a.Color,
		Description:             a.Description,
		HealthStatus:            a.HealthStatus,
		IsVaccinated:            a.IsVaccinated,
		IsNeutered:              a.IsNeutered,
		IsSpecialNeeds:          a.IsSpecialNeeds,
		SpecialNeedsDescription: a.SpecialNeedsDescription,
		AdoptionStatus:          a.AdoptionStatus.String(),
		Images:                  nonNil(a.Images),
		UserID:                  a.UserID,
		Owner:                   s.user(ref(a.UserID)),
		AdoptedBy:               a.AdoptedBy,
		Adopter:                 s.user(a.AdoptedBy),
		AdoptedAt:               a.AdoptedAt,
		Location:                a.Location,
		City:                    a.City,
		State:                   a.State,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type reportDTO struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	AnimalType   string          `json:"animalType"`
	UrgencyLevel string          `json:"urgencyLevel"`
	Status       string          `json:"status"`
	Images       []string        `json:"images"`
	UserID       *uuid.UUID      `json:"userId"`
	Reporter     *userSummaryDTO `json:"reporter,omitempty"`
	AssignedToID *uuid.UUID      `json:"assignedToId"`
	AssignedTo   *userSummaryDTO `json:"assignedTo,omitempty"`
	ResolvedAt   *time.Time      `json:"resolvedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func reportRefs(rs ...domain.Report) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2*len(rs))
	for _, r := range rs {
		ids = append(ids, refs(r.UserID, r.AssignedToID)...)
	}
	return ids
}

func toReport(r domain.Report, s summaries) reportDTO {
	return reportDTO{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		AnimalType:   r.AnimalType,
		UrgencyLevel: r.UrgencyLevel.String(),
		Status:       r.Status.String(),
		Images:       nonNil(r.Images),
		UserID:       r.UserID,
		Reporter:     s.user(r.UserID),
		AssignedToID: r.AssignedToID,
		AssignedTo:   s.user(r.AssignedToID),
		ResolvedAt:   r.ResolvedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type eventDTO struct {
	ID                  uuid.UUID       `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	EventType           string          `json:"eventType"`
	StartDate           time.Time       `json:"startDate"`
	EndDate             *time.Time      `json:"endDate,omitempty"`
	Location            string          `json:"location"`
	Address             string          `json:"address"`
	City                string          `json:"city"`
	State               string          `json:"state"`
	Latitude            *float64        `json:"latitude,omitempty"`
	Longitude           *float64        `json:"longitude,omitempty"`
	Image               *string         `json:"image,omitempty"`
	ContactEmail        *string         `json:"contactEmail,omitempty"`
	ContactPhone        *string         `json:"contactPhone,omitempty"`
	MaxParticipants     *int            `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	IsActive            bool            `json:"isActive"`
	UserID              uuid.UUID       `json:"userId"`
	Organizer           *userSummaryDTO `json:"organizer,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func eventRefs(es ...domain.Event) []uuid.UUID {
	ids := make([]uuid.UUID, len(es))
	for i, e := range es {
		ids[i] = e.UserID
	}
	return ids
}

func toEvent(e domain.Event, s summaries) eventDTO {
	return eventDTO{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		EventType:           e.EventType.String(),
		StartDate:           e.StartDate,
		EndDate:             e.EndDate,
		Location:            e.Location,
		Address:             e.Address,
		City:                e.City,
		State:               e.State,
		Latitude:            e.Latitude,
		Longitude:           e.Longitude,
		Image:               e.Image,
		ContactEmail:        e.ContactEmail,
		ContactPhone:        e.ContactPhone,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		IsActive:            e.IsActive,
		UserID:              e.UserID,
		Organizer:           s.user(ref(e.UserID)),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Donations
// ---------------------------------------------------------------------------

type donationDTO struct {
	ID              uuid.UUID        `json:"id"`
	Type            string           `json:"type"`
	AmountCents     *int64           `json:"amountCents,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	PaymentMethod   *string          `json:"paymentMethod,omitempty"`
	TransactionID   *string          `json:"transactionId,omitempty"`
	ItemName        *string          `json:"itemName,omitempty"`
	ItemDescription *string          `json:"itemDescription,omitempty"`
	ItemQuantity    *int             `json:"itemQuantity,omitempty"`
	ItemCategory    *string          `json:"itemCategory,omitempty"`
	Status          string           `json:"status"`
	DonorID         *uuid.UUID       `json:"donorId"`
	Donor           *userSummaryDTO  `json:"donor,omitempty"`
	RecipientID     uuid.UUID        `json:"recipientId"`
	Recipient       *userSummaryDTO  `json:"recipient,omitempty"`
	CampaignID      *uuid.UUID       `json:"campaignId"`
	Campaign        *eventSummaryDTO `json:"campaign,omitempty"`
	Message         *string          `json:"message,omitempty"`
	IsAnonymous     bool             `json:"isAnonymous"`
	DeliveryAddress *string          `json:"deliveryAddress,omitempty"`
	DeliveryDate    *time.Time       `json:"deliveryDate,omitempty"`
	ReceiptImage    *string          `json:"receiptImage,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func donationRefs(ds ...domain.Donation) (users, events []uuid.UUID) {
	for _, d := range ds {
		users = append(users, refs(d.DonorID, ref(d.RecipientID))...)
		events = append(events, refs(d.CampaignID)...)
	}
	return users, events
}

func toDonation(d domain.Donation, s summaries) donationDTO {
	var category *string
	if d.ItemCategory != nil {
		c := d.ItemCategory.String()
		category = &c
	}
	return donationDTO{
		ID:              d.ID,
		Type:            d.Type.String(),
		AmountCents:     d.AmountCents,
		Currency:        d.Currency,
		PaymentMethod:   d.PaymentMethod,
		TransactionID:   d.TransactionID,
		ItemName:        d.ItemName,
		ItemDescription: d.ItemDescription,
		ItemQuantity:    d.ItemQuantity,
		ItemCategory:    category,
		Status:          d.Status.String(),
		DonorID:         d.DonorID,
		Donor:           s.user(d.DonorID),
		RecipientID:     d.RecipientID,
		Recipient:       s.user(ref(d.RecipientID)),
		CampaignID:      d.CampaignID,
		Campaign:        s.event(d.CampaignID),
		Message:         d.Message,
		IsAnonymous:     d.IsAnonymous,
		DeliveryAddress: d.DeliveryAddress,
		DeliveryDate:    d.DeliveryDate,
		ReceiptImage:    d.ReceiptImage,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Volunteers
// ---------------------------------------------------------------------------

type volunteerDTO struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                uuid.UUID       `json:"userId"`
	User                  *userSummaryDTO `json:"user,omitempty"`
	Skills                []string        `json:"skills"`
	Availability          string          `json:"availability"`
	AvailableHours        *int            `json:"availableHours,omitempty"`
	Experience            *string         `json:"experience,omitempty"`
	HasVehicle            bool            `json:"hasVehicle"`
	PreferredActivities   []string        `json:"preferredActivities"`
	Status                string          `json:"status"`
	Notes                 *string         `json:"notes,omitempty"`
	StartDate             *time.Time      `json:"startDate"`
	EmergencyContactName  *string         `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string         `json:"emergencyContactPhone,omitempty"`
	Documents             []string        `json:"documents"`
	IsActive              bool            `json:"isActive"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func volunteerRefs(vs ...domain.Volunteer) []uuid.UUID {
	ids := make([]uuid.UUID, len(vs))
	for i, v := range vs {
		ids[i] = v.UserID
	}
	return ids
}

func toVolunteer(v domain.Volunteer, s summaries) volunteerDTO {
	return volunteerDTO{
		ID:                    v.ID,
		UserID:                v.UserID,
		User:                  s.user(ref(v.UserID)),
		Skills:                nonNil(v.Skills),
		Availability:          v.Availability.String(),
		AvailableHours:        v.AvailableHours,
		Experience:            v.Experience,
		HasVehicle:            v.HasVehicle,
		PreferredActivities:   nonNil(v.PreferredActivities),
		Status:                v.Status.String(),
		Notes:                 v.Notes,
		StartDate:             v.StartDate,
		EmergencyContactName:  v.EmergencyContactName,
		EmergencyContactPhone: v.EmergencyContactPhone,
		Documents:             nonNil(v.Documents),
		IsActive:              v.IsActive,
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
