package vehicle

import (
	"errors"
	"strings"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a fleet vehicle, optionally bound to a default driver.
type Vehicle struct {
	id           kernel.UUID
	licensePlate string
	make         string
	model        string
	status       Status
	driverID     *kernel.UUID

	isConstructed bool
}

// NewVehicle registers an AVAILABLE vehicle. License plate is required.
func NewVehicle(id kernel.UUID, licensePlate, brand, model string, driverID *kernel.UUID) (*Vehicle, error) {
	v := &Vehicle{
		make:          strings.TrimSpace(brand),
		model:         strings.TrimSpace(model),
		status:        Available,
		isConstructed: true,
	}

	var plateErr error
	licensePlate = strings.TrimSpace(licensePlate)
	if licensePlate == "" {
		plateErr = errs.NewValueIsRequiredError("licensePlate")
	}
	v.licensePlate = licensePlate

	var driverErr error
	if driverID != nil {
		driverErr = driverID.Validate()
		d := *driverID
		v.driverID = &d
	}

	if err := errors.Join(id.Validate(), plateErr, driverErr); err != nil {
		return nil, err
	}
	v.id = id

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

func (v *Vehicle) Make() string {
	return v.make
}

func (v *Vehicle) Model() string {
	return v.model
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) DriverID() *kernel.UUID {
	if v.driverID == nil {
		return nil
	}
	d := *v.driverID
	return &d
}

// ChangeStatus sets a new status and returns the previous one.
// Setting the current status again is rejected.
func (v *Vehicle) ChangeStatus(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if to == v.status {
		return Unknown, errs.NewTransitionIsInvalidError("change vehicle status to "+to.String(), v.status.String())
	}

	from := v.status
	v.status = to
	return from, nil
}

func (v *Vehicle) Clone() *Vehicle {
	c := *v
	c.driverID = v.DriverID()
	return &c
}
