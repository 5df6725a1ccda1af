package queries

import (
	"context"

	"tripflow/internal/core/ports"
)

type ListVehiclesQueryHandler struct {
	vehicles ports.VehicleReader
}

func NewListVehiclesQueryHandler(vehicles ports.VehicleReader) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{vehicles: vehicles}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]VehicleResponse, 0, len(found))
	for _, v := range found {
		if !query.Matches(v) {
			continue
		}
		out = append(out, VehicleResponse{
			ID:           v.ID(),
			LicensePlate: v.LicensePlate(),
			Make:         v.Make(),
			Model:        v.Model(),
			Status:       v.Status().String(),
			DriverID:     v.DriverID(),
		})
	}
	return out, nil
}

type ListDriversQueryHandler struct {
	drivers ports.DriverReader
}

func NewListDriversQueryHandler(drivers ports.DriverReader) ListDriversQueryHandler {
	return ListDriversQueryHandler{drivers: drivers}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.drivers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DriverResponse, 0, len(found))
	for _, d := range found {
		if !query.Matches(d) {
			continue
		}
		out = append(out, DriverResponse{
			ID:                d.ID(),
			Name:              d.Name(),
			License:           d.License(),
			Status:            d.Status().String(),
			CurrentTripID:     d.CurrentTripID(),
			AssignedVehicleID: d.AssignedVehicleID(),
		})
	}
	return out, nil
}
