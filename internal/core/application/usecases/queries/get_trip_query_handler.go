package queries

import (
	"context"

	"tripflow/internal/core/domain/services"
	"tripflow/internal/core/ports"
)

// GetTripQueryHandler reads one committed trip.
type GetTripQueryHandler struct {
	trips  ports.TripReader
	policy services.SLAPolicy
}

func NewGetTripQueryHandler(trips ports.TripReader, policy services.SLAPolicy) GetTripQueryHandler {
	return GetTripQueryHandler{trips: trips, policy: policy}
}

// Handle returns errs.ErrObjectNotFound for unknown ids.
func (h GetTripQueryHandler) Handle(ctx context.Context, query GetTripQuery) (TripResponse, error) {
	if err := query.Validate(); err != nil {
		return TripResponse{}, err
	}

	t, err := h.trips.Get(ctx, query.TripID())
	if err != nil {
		return TripResponse{}, err
	}

	return newTripResponse(t, h.policy), nil
}
