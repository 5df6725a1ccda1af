// Package eventrepo persists the audit log and the activity feed in PostgreSQL.
// Rows are append-only; a monotonically increasing seq column keeps the
// insertion order that both projections are read in.
package eventrepo

import (
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditEntryDTO is the row of one audit entry.
type AuditEntryDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	EntityKind string    `gorm:"type:varchar(16);not null;index:idx_audit_entity,priority:1"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity,priority:2"`
	Action     string    `gorm:"type:varchar(64);not null"`
	Details    string    `gorm:"type:text;not null"`
	UserName   string    `gorm:"column:user_name;type:varchar(255);not null"`
	Type       string    `gorm:"type:varchar(16);not null"`
	Timestamp  time.Time `gorm:"type:timestamptz;not null"`
}

func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// ActivityDTO is the row of one activity feed item.
type ActivityDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"type:timestamptz;not null"`
}

func (ActivityDTO) TableName() string {
	return "activities"
}

func entryFromDomain(e audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:         e.ID().Bytes(),
		EntityKind: string(e.EntityKind()),
		EntityID:   e.EntityID().Bytes(),
		Action:     e.Action(),
		Details:    e.Details(),
		UserName:   e.Actor().String(),
		Type:       string(e.Type()),
		Timestamp:  e.Timestamp().UTC(),
	}
}

func entryToDomain(dto AuditEntryDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	return audit.RestoreEntry(
		id,
		audit.EntityKind(dto.EntityKind),
		entityID,
		dto.Action,
		dto.Details,
		kernel.Actor(dto.UserName),
		audit.EntryType(dto.Type),
		dto.Timestamp,
	)
}

func activityFromDomain(a audit.Activity) ActivityDTO {
	return ActivityDTO{
		ID:        a.ID().Bytes(),
		Type:      string(a.Type()),
		Message:   a.Message(),
		Timestamp: a.Timestamp().UTC(),
	}
}

func activityToDomain(dto ActivityDTO) (audit.Activity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Activity{}, err
	}
	return audit.RestoreActivity(id, audit.ActivityType(dto.Type), dto.Message, dto.Timestamp)
}
