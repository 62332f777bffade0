package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only record of a mutation.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
