package queries

import (
	"context"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/core/ports"
)

// GetDashboardQueryHandler counts trips and fleet by state. Each reader returns
// its own snapshot, so the counts of different tables may straddle a commit.
type GetDashboardQueryHandler struct {
	trips    ports.TripReader
	vehicles ports.VehicleReader
	drivers  ports.DriverReader
}

func NewGetDashboardQueryHandler(
	trips ports.TripReader,
	vehicles ports.VehicleReader,
	drivers ports.DriverReader,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{trips: trips, vehicles: vehicles, drivers: drivers}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	var out DashboardResponse
	if err := query.Validate(); err != nil {
		return out, err
	}

	trips, err := h.trips.List(ctx, ports.TripFilter{})
	if err != nil {
		return out, err
	}
	for _, t := range trips {
		switch t.Status() {
		case trip.Assigned, trip.InProgress, trip.Delayed:
			out.ActiveTrips++
		case trip.Pending:
			out.PendingTrips++
		}
		if t.SLABreached() {
			out.SLABreachedTrips++
		}
	}

	vehicles, err := h.vehicles.List(ctx)
	if err != nil {
		return out, err
	}
	for _, v := range vehicles {
		if v.Status() == vehicle.Available {
			out.AvailableVehicles++
		}
	}

	drivers, err := h.drivers.List(ctx)
	if err != nil {
		return out, err
	}
	for _, d := range drivers {
		if d.Status() == driver.Available {
			out.AvailableDrivers++
		}
	}

	return out, nil
}
