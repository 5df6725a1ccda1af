package queries

import (
	"context"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/ports"
)

type ListActivityQueryHandler struct {
	events ports.EventReader
}

func NewListActivityQueryHandler(events ports.EventReader) ListActivityQueryHandler {
	return ListActivityQueryHandler{events: events}
}

func (h ListActivityQueryHandler) Handle(ctx context.Context, query ListActivityQuery) ([]ActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activities, err := h.events.ListActivity(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivityResponse(a))
	}
	return out, nil
}

// NewActivityResponse maps one activity. The HTTP event stream shares it.
func NewActivityResponse(a audit.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID(),
		Type:      string(a.Type()),
		Message:   a.Message(),
		Timestamp: a.Timestamp(),
	}
}
