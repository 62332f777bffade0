package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an activity organized by UserID. Volunteers enroll through the
// event_volunteers relation; CurrentParticipants counts them.
type Event struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	EventType           EventType
	StartDate           time.Time
	EndDate             *time.Time
	Location            string
	Address             string
	City                string
	State               string
	Latitude            *float64
	Longitude           *float64
	Image               *string
	ContactEmail        *string
	ContactPhone        *string
	MaxParticipants     *int
	CurrentParticipants int
	IsActive            bool
	UserID              uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasCapacity reports whether one more volunteer fits.
func (e Event) HasCapacity() bool {
	return e.MaxParticipants == nil || e.CurrentParticipants < *e.MaxParticipants
}

// EventSummary is the projection of an event embedded in donations.
type EventSummary struct {
	ID        uuid.UUID
	Title     string
	EventType EventType
	StartDate time.Time
}

func (e Event) Summary() EventSummary {
	return EventSummary{ID: e.ID, Title: e.Title, EventType: e.EventType, StartDate: e.StartDate}
}

// EventFilter holds filters for event listings. From/To bound StartDate and
// EndDate respectively.
type EventFilter struct {
	EventType  *EventType
	City       *string
	State      *string
	From       *time.Time
	To         *time.Time
	UserID     *uuid.UUID
	ActiveOnly bool
}
