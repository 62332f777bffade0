package domain

// Role is the closed set of authorization levels a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleOng   Role = "ong"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOng, RoleAdmin:
		return true
	}
	return false
}

// ReportStatus tracks a rescue report through investigation.
type ReportStatus string

const (
	ReportStatusPending       ReportStatus = "pending"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusResolved      ReportStatus = "resolved"
	ReportStatusClosed        ReportStatus = "closed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInvestigating, ReportStatusResolved, ReportStatusClosed:
		return true
	}
	return false
}

// UrgencyLevel ranks how quickly a report needs attention.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

func (u UrgencyLevel) String() string { return string(u) }

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// AdoptionStatus is the adoption lifecycle of a listed animal.
type AdoptionStatus string

const (
	AdoptionAvailable AdoptionStatus = "available"
	AdoptionPending   AdoptionStatus = "pending"
	AdoptionAdopted   AdoptionStatus = "adopted"
)

func (s AdoptionStatus) String() string { return string(s) }

func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionAvailable, AdoptionPending, AdoptionAdopted:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra_large"
)

func (s Size) String() string { return string(s) }

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

type AgeUnit string

const (
	AgeUnitDays   AgeUnit = "days"
	AgeUnitMonths AgeUnit = "months"
	AgeUnitYears  AgeUnit = "years"
)

func (u AgeUnit) String() string { return string(u) }

func (u AgeUnit) IsValid() bool {
	switch u {
	case AgeUnitDays, AgeUnitMonths, AgeUnitYears:
		return true
	}
	return false
}

// EventType categorizes events organized by ONGs.
type EventType string

const (
	EventTypeAdoption    EventType = "adoption"
	EventTypeVaccination EventType = "vaccination"
	EventTypeNeutering   EventType = "neutering"
	EventTypeFundraising EventType = "fundraising"
	EventTypeEducation   EventType = "education"
	EventTypeOther       EventType = "other"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeAdoption, EventTypeVaccination, EventTypeNeutering,
		EventTypeFundraising, EventTypeEducation, EventTypeOther:
		return true
	}
	return false
}

type DonationType string

const (
	DonationFinancial DonationType = "financial"
	DonationItem      DonationType = "item"
)

func (t DonationType) String() string { return string(t) }

func (t DonationType) IsValid() bool {
	switch t {
	case DonationFinancial, DonationItem:
		return true
	}
	return false
}

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusConfirmed DonationStatus = "confirmed"
	DonationStatusDelivered DonationStatus = "delivered"
	DonationStatusCancelled DonationStatus = "cancelled"
)

func (s DonationStatus) String() string { return string(s) }

func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationStatusPending, DonationStatusConfirmed, DonationStatusDelivered, DonationStatusCancelled:
		return true
	}
	return false
}

type ItemCategory string

const (
	ItemCategoryFood        ItemCategory = "food"
	ItemCategoryMedicine    ItemCategory = "medicine"
	ItemCategoryToys        ItemCategory = "toys"
	ItemCategoryAccessories ItemCategory = "accessories"
	ItemCategoryCleaning    ItemCategory = "cleaning"
	ItemCategoryOther       ItemCategory = "other"
)

func (c ItemCategory) String() string { return string(c) }

func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemCategoryFood, ItemCategoryMedicine, ItemCategoryToys,
		ItemCategoryAccessories, ItemCategoryCleaning, ItemCategoryOther:
		return true
	}
	return false
}

// VolunteerStatus is the review state of a volunteer profile.
type VolunteerStatus string

const (
	VolunteerStatusPending  VolunteerStatus = "pending"
	VolunteerStatusApproved VolunteerStatus = "approved"
	VolunteerStatusActive   VolunteerStatus = "active"
	VolunteerStatusInactive VolunteerStatus = "inactive"
)

func (s VolunteerStatus) String() string { return string(s) }

func (s VolunteerStatus) IsValid() bool {
	switch s {
	case VolunteerStatusPending, VolunteerStatusApproved, VolunteerStatusActive, VolunteerStatusInactive:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityFullTime Availability = "full_time"
	AvailabilityOnCall   Availability = "on_call"
)

func (a Availability) String() string { return string(a) }

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityWeekdays, AvailabilityWeekends, AvailabilityEvenings,
		AvailabilityFullTime, AvailabilityOnCall:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeUser      EntityType = "USER"
	EntityTypeReport    EntityType = "REPORT"
	EntityTypeAnimal    EntityType = "ANIMAL"
	EntityTypeEvent     EntityType = "EVENT"
	EntityTypeDonation  EntityType = "DONATION"
	EntityTypeVolunteer EntityType = "VOLUNTEER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeReport, EntityTypeAnimal,
		EntityTypeEvent, EntityTypeDonation, EntityTypeVolunteer:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionStatus AuditAction = "STATUS"
	AuditActionEnroll AuditAction = "ENROLL"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionStatus, AuditActionEnroll, AuditActionDelete:
		return true
	}
	return false
}
