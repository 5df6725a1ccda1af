package queries

import (
	"context"

	"tripflow/internal/core/ports"
)

type ListAuditLogQueryHandler struct {
	events ports.EventReader
}

func NewListAuditLogQueryHandler(events ports.EventReader) ListAuditLogQueryHandler {
	return ListAuditLogQueryHandler{events: events}
}

// Handle returns an empty slice for entities that have no entries, including
// unknown ids.
func (h ListAuditLogQueryHandler) Handle(ctx context.Context, query ListAuditLogQuery) ([]AuditEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.events.ListAudit(ctx, query.Kind(), query.EntityID())
	if err != nil {
		return nil, err
	}

	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:         e.ID(),
			EntityKind: string(e.EntityKind()),
			EntityID:   e.EntityID(),
			Action:     e.Action(),
			Details:    e.Details(),
			User:       e.Actor().String(),
			Type:       string(e.Type()),
			Timestamp:  e.Timestamp(),
		})
	}
	return out, nil
}
