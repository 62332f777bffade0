package domain

import "github.com/google/uuid"

// OwnerResolver extracts the owning user of a resource. ok is false when the
// resource has no owner (an anonymous report, for example).
type OwnerResolver[T any] interface {
	OwnerIDOf(resource T) (id uuid.UUID, ok bool)
}

// OwnerFunc adapts a function to OwnerResolver.
type OwnerFunc[T any] func(resource T) (uuid.UUID, bool)

func (f OwnerFunc[T]) OwnerIDOf(resource T) (uuid.UUID, bool) { return f(resource) }

func optionalOwner(id *uuid.UUID) (uuid.UUID, bool) {
	if id == nil {
		return uuid.Nil, false
	}
	return *id, true
}

// Owner resolvers for each mutable entity.
var (
	AnimalOwner OwnerResolver[Animal] = OwnerFunc[Animal](func(a Animal) (uuid.UUID, bool) {
		return a.UserID, true
	})
	EventOwner OwnerResolver[Event] = OwnerFunc[Event](func(e Event) (uuid.UUID, bool) {
		return e.UserID, true
	})
	VolunteerOwner OwnerResolver[Volunteer] = OwnerFunc[Volunteer](func(v Volunteer) (uuid.UUID, bool) {
		return v.UserID, true
	})
	ReportOwner OwnerResolver[Report] = OwnerFunc[Report](func(r Report) (uuid.UUID, bool) {
		return optionalOwner(r.UserID)
	})
	// DonationRecipient owns status management of a donation.
	DonationRecipient OwnerResolver[Donation] = OwnerFunc[Donation](func(d Donation) (uuid.UUID, bool) {
		return d.RecipientID, true
	})
	// DonationDonor owns the receipt of a donation. Anonymous donations have none.
	DonationDonor OwnerResolver[Donation] = OwnerFunc[Donation](func(d Donation) (uuid.UUID, bool) {
		return optionalOwner(d.DonorID)
	})
)
