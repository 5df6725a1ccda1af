package commands

import (
	"errors"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
		"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
	)
	ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
		"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
	)
)

// RegisterVehicleCommand adds a vehicle to the fleet. Plate and optional driver
// are validated by the Vehicle aggregate and the handler.
type RegisterVehicleCommand struct {
	vehicleID    kernel.UUID
	licensePlate string
	make         string
	model        string
	driverID     *kernel.UUID
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	licensePlate, brand, model string,
	driverID *kernel.UUID,
	actor kernel.Actor,
) (RegisterVehicleCommand, error) {
	if err := errors.Join(vehicleID.Validate(), actor.Validate()); err != nil {
		return RegisterVehicleCommand{}, err
	}
	return RegisterVehicleCommand{
		vehicleID:    vehicleID,
		licensePlate: licensePlate,
		make:         brand,
		model:        model,
		driverID:     driverID,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c RegisterVehicleCommand) LicensePlate() string { return c.licensePlate }
func (c RegisterVehicleCommand) Make() string { return c.make }
func (c RegisterVehicleCommand) Model() string { return c.model }
func (c RegisterVehicleCommand) DriverID() *kernel.UUID { return c.driverID }
func (c RegisterVehicleCommand) Actor() kernel.Actor { return c.actor }

// RegisterDriverCommand adds a driver to the fleet.
type RegisterDriverCommand struct {
	driverID          kernel.UUID
	name              string
	license           string
	assignedVehicleID *kernel.UUID
	actor             kernel.Actor

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name, license string,
	assignedVehicleID *kernel.UUID,
	actor kernel.Actor,
) (RegisterDriverCommand, error) {
	if err := errors.Join(driverID.Validate(), actor.Validate()); err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{
		driverID:          driverID,
		name:              name,
		license:           license,
		assignedVehicleID: assignedVehicleID,
		actor:             actor,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID { return c.driverID }
func (c RegisterDriverCommand) Name() string { return c.name }
func (c RegisterDriverCommand) License() string { return c.license }
func (c RegisterDriverCommand) AssignedVehicleID() *kernel.UUID { return c.assignedVehicleID }
func (c RegisterDriverCommand) Actor() kernel.Actor { return c.actor }

// ChangeVehicleStatusCommand sets the status of a vehicle.
type ChangeVehicleStatusCommand struct {
	vehicleID kernel.UUID
	status    vehicle.Status
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

func NewChangeVehicleStatusCommand(
	vehicleID kernel.UUID,
	status vehicle.Status,
	actor kernel.Actor,
) (ChangeVehicleStatusCommand, error) {
	if err := errors.Join(vehicleID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}
	return ChangeVehicleStatusCommand{
		vehicleID: vehicleID,
		status:    status,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

func (c ChangeVehicleStatusCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c ChangeVehicleStatusCommand) Status() vehicle.Status { return c.status }
func (c ChangeVehicleStatusCommand) Actor() kernel.Actor { return c.actor }

// ChangeDriverStatusCommand sets the status of a driver. tripID is required
// for ON_TRIP and rejected otherwise.
type ChangeDriverStatusCommand struct {
	driverID kernel.UUID
	status   driver.Status
	tripID   *kernel.UUID
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

func NewChangeDriverStatusCommand(
	driverID kernel.UUID,
	status driver.Status,
	tripID *kernel.UUID,
	actor kernel.Actor,
) (ChangeDriverStatusCommand, error) {
	if err := errors.Join(driverID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return ChangeDriverStatusCommand{}, err
	}
	return ChangeDriverStatusCommand{
		driverID: driverID,
		status:   status,
		tripID:   tripID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

func (c ChangeDriverStatusCommand) DriverID() kernel.UUID { return c.driverID }
func (c ChangeDriverStatusCommand) Status() driver.Status { return c.status }
func (c ChangeDriverStatusCommand) TripID() *kernel.UUID { return c.tripID }
func (c ChangeDriverStatusCommand) Actor() kernel.Actor { return c.actor }
