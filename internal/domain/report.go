package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a sighting of a stray or abused animal. UserID is nil for
// anonymous reports.
type Report struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Location     string
	Latitude     *float64
	Longitude    *float64
	AnimalType   string
	UrgencyLevel UrgencyLevel
	Status       ReportStatus
	Images       []string
	UserID       *uuid.UUID
	AssignedToID *uuid.UUID
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyStatus moves the report to status on behalf of actorID. The actor
// becomes the assignee when nobody is assigned yet, and ResolvedAt is
// stamped the first time the report is resolved.
func (r *Report) ApplyStatus(status ReportStatus, actorID uuid.UUID, now time.Time) {
	r.Status = status
	if r.AssignedToID == nil {
		id := actorID
		r.AssignedToID = &id
	}
	if status == ReportStatusResolved && r.ResolvedAt == nil {
		t := now
		r.ResolvedAt = &t
	}
}

// ReportFilter holds exact-match filters for report listings.
type ReportFilter struct {
	Status       *ReportStatus
	UrgencyLevel *UrgencyLevel
	AnimalType   *string
	UserID       *uuid.UUID
	AssignedToID *uuid.UUID
}
