package queries

import (
	"errors"
	"time"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/guard"
)

var ErrListAuditLogQueryIsNotConstructed = errors.New(
	"ListAuditLogQuery must be created via NewListAuditLogQuery constructor",
)

// ListAuditLogQuery retrieves the audit trail of one trip, vehicle or driver
// in the order the entries were written.
type ListAuditLogQuery struct {
	kind     audit.EntityKind
	entityID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAuditLogQuery(kind audit.EntityKind, entityID kernel.UUID) (ListAuditLogQuery, error) {
	if err := errors.Join(kind.Validate(), entityID.Validate()); err != nil {
		return ListAuditLogQuery{}, err
	}
	return ListAuditLogQuery{kind: kind, entityID: entityID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrListAuditLogQueryIsNotConstructed)
}

func (q ListAuditLogQuery) Kind() audit.EntityKind {
	return q.kind
}

func (q ListAuditLogQuery) EntityID() kernel.UUID {
	return q.entityID
}

// AuditEntryResponse is the read model of one audit entry.
type AuditEntryResponse struct {
	ID         kernel.UUID
	EntityKind string
	EntityID   kernel.UUID
	Action     string
	Details    string
	User       string
	Type       string
	Timestamp  time.Time
}
