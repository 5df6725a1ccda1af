package queries

import (
	"context"

	"tripflow/internal/core/domain/services"
	"tripflow/internal/core/ports"
)

// ListTripsQueryHandler lists committed trips.
type ListTripsQueryHandler struct {
	trips  ports.TripReader
	policy services.SLAPolicy
}

func NewListTripsQueryHandler(trips ports.TripReader, policy services.SLAPolicy) ListTripsQueryHandler {
	return ListTripsQueryHandler{trips: trips, policy: policy}
}

func (h ListTripsQueryHandler) Handle(ctx context.Context, query ListTripsQuery) ([]TripResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.trips.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	trips := make([]TripResponse, 0, len(found))
	for _, t := range found {
		trips = append(trips, newTripResponse(t, h.policy))
	}
	return trips, nil
}
