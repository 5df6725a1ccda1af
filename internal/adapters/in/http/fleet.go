package http

import (
	"net/http"

	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context, params servers.ListVehiclesParams) error {
	var status *vehicle.Status
	if params.Status != nil {
		parsed, err := vehicle.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListVehiclesQuery(derefString(params.Search), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicles, err := s.h.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = servers.Vehicle{
			Id:           v.ID.Bytes(),
			LicensePlate: v.LicensePlate,
			Make:         v.Make,
			Model:        v.Model,
			Status:       servers.VehicleStatus(v.Status),
			DriverId:     fromOptionalUUID(v.DriverID),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /api/v1/vehicles. New vehicles are AVAILABLE.
func (s *Server) RegisterVehicle(ctx echo.Context, params servers.ActorParams) error {
	var body servers.RegisterVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := toOptionalUUID(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(
		vehicleID, body.LicensePlate, body.Make, body.Model, driverID, actorOf(params),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RegisterVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Vehicle{
		Id:           vehicleID.Bytes(),
		LicensePlate: body.LicensePlate,
		Make:         body.Make,
		Model:        body.Model,
		Status:       servers.VehicleStatus(vehicle.Available.String()),
		DriverId:     body.DriverId,
	})
}

// ChangeVehicleStatus handles POST /api/v1/vehicles/{vehicleId}/status.
func (s *Server) ChangeVehicleStatus(
	ctx echo.Context,
	vehicleId openapi_types.UUID,
	params servers.ActorParams,
) error {
	id, err := toUUID(vehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ChangeVehicleStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := vehicle.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(id, status, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeVehicleStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context, params servers.ListDriversParams) error {
	var status *driver.Status
	if params.Status != nil {
		parsed, err := driver.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListDriversQuery(derefString(params.Search), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	drivers, err := s.h.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.Driver{
			Id:                d.ID.Bytes(),
			Name:              d.Name,
			License:           d.License,
			Status:            servers.DriverStatus(d.Status),
			CurrentTripId:     fromOptionalUUID(d.CurrentTripID),
			AssignedVehicleId: fromOptionalUUID(d.AssignedVehicleID),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers. New drivers are AVAILABLE.
func (s *Server) RegisterDriver(ctx echo.Context, params servers.ActorParams) error {
	var body servers.RegisterDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := toOptionalUUID(body.AssignedVehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.License, vehicleID, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Driver{
		Id:                driverID.Bytes(),
		Name:              body.Name,
		License:           body.License,
		Status:            servers.DriverStatus(driver.Available.String()),
		AssignedVehicleId: body.AssignedVehicleId,
	})
}

// ChangeDriverStatus handles POST /api/v1/drivers/{driverId}/status.
func (s *Server) ChangeDriverStatus(
	ctx echo.Context,
	driverId openapi_types.UUID,
	params servers.ActorParams,
) error {
	id, err := toUUID(driverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ChangeDriverStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := driver.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	tripID, err := toOptionalUUID(body.TripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(id, status, tripID, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ChangeDriverStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
