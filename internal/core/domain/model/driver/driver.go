package driver

import (
	"errors"
	"strings"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a fleet driver with an optional assigned vehicle.
type Driver struct {
	id                kernel.UUID
	name              string
	license           string
	status            Status
	currentTripID     *kernel.UUID
	assignedVehicleID *kernel.UUID

	isConstructed bool
}

// NewDriver registers an AVAILABLE driver. Name and license are required.
func NewDriver(id kernel.UUID, name, license string, assignedVehicleID *kernel.UUID) (*Driver, error) {
	d := &Driver{
		status:        Available,
		isConstructed: true,
	}

	var nameErr, licenseErr, vehicleErr error
	if d.name = strings.TrimSpace(name); d.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if d.license = strings.TrimSpace(license); d.license == "" {
		licenseErr = errs.NewValueIsRequiredError("license")
	}
	if assignedVehicleID != nil {
		vehicleErr = assignedVehicleID.Validate()
		d.assignedVehicleID = cloneUUID(assignedVehicleID)
	}

	if err := errors.Join(id.Validate(), nameErr, licenseErr, vehicleErr); err != nil {
		return nil, err
	}
	d.id = id

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) License() string {
	return d.license
}

func (d *Driver) Status() Status {
	return d.status
}

func (d *Driver) CurrentTripID() *kernel.UUID {
	return cloneUUID(d.currentTripID)
}

func (d *Driver) AssignedVehicleID() *kernel.UUID {
	return cloneUUID(d.assignedVehicleID)
}

// ChangeStatus sets a new status and returns the previous one.
//
// Business rules:
//   - OnTrip requires tripID; the caller checks that the trip exists
//   - any other status clears the current trip and must not be given a tripID
//   - setting the current status again is rejected, unless OnTrip moves to another trip
func (d *Driver) ChangeStatus(to Status, tripID *kernel.UUID) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}

	if to == OnTrip {
		if tripID == nil {
			return Unknown, errs.NewValueIsRequiredError("tripId")
		}
		if err := tripID.Validate(); err != nil {
			return Unknown, err
		}
		if d.status == OnTrip && d.currentTripID != nil && d.currentTripID.IsEqual(*tripID) {
			return Unknown, errs.NewTransitionIsInvalidError("change driver status to "+to.String(), d.status.String())
		}
	} else {
		if tripID != nil {
			return Unknown, errs.NewValueIsInvalidError("tripId is only accepted with status ON_TRIP")
		}
		if to == d.status {
			return Unknown, errs.NewTransitionIsInvalidError("change driver status to "+to.String(), d.status.String())
		}
	}

	from := d.status
	d.status = to
	d.currentTripID = cloneUUID(tripID)
	return from, nil
}

func (d *Driver) Clone() *Driver {
	c := *d
	c.currentTripID = cloneUUID(d.currentTripID)
	c.assignedVehicleID = cloneUUID(d.assignedVehicleID)
	return &c
}

func cloneUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
