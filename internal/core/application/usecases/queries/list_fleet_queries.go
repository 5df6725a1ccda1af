package queries

import (
	"errors"
	"strings"

	"tripflow/internal/core/domain/model/driver"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/vehicle"
	"tripflow/internal/pkg/guard"
)

var (
	ErrListVehiclesQueryIsNotConstructed = errors.New(
		"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
	)
	ErrListDriversQueryIsNotConstructed = errors.New(
		"ListDriversQuery must be created via NewListDriversQuery constructor",
	)
)

// ListVehiclesQuery lists the fleet's vehicles in registration order. search
// matches plate, make, model and id case-insensitively.
type ListVehiclesQuery struct {
	search string
	status *vehicle.Status

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery builds the query. status may be nil for every status.
func NewListVehiclesQuery(search string, status *vehicle.Status) (ListVehiclesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}
	return ListVehiclesQuery{
		search: strings.ToLower(strings.TrimSpace(search)),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Matches(v *vehicle.Vehicle) bool {
	if q.status != nil && v.Status() != *q.status {
		return false
	}
	return containsFold(q.search, v.LicensePlate(), v.Make(), v.Model(), v.ID().String())
}

type VehicleResponse struct {
	ID           kernel.UUID
	LicensePlate string
	Make         string
	Model        string
	Status       string
	DriverID     *kernel.UUID
}

// ListDriversQuery lists drivers in registration order. search matches name,
// license and id case-insensitively.
type ListDriversQuery struct {
	search string
	status *driver.Status

	guard guard.ConstructorGuard
}

// NewListDriversQuery builds the query. status may be nil for every status.
func NewListDriversQuery(search string, status *driver.Status) (ListDriversQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDriversQuery{}, err
		}
	}
	return ListDriversQuery{
		search: strings.ToLower(strings.TrimSpace(search)),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Matches(d *driver.Driver) bool {
	if q.status != nil && d.Status() != *q.status {
		return false
	}
	return containsFold(q.search, d.Name(), d.License(), d.ID().String())
}

type DriverResponse struct {
	ID                kernel.UUID
	Name              string
	License           string
	Status            string
	CurrentTripID     *kernel.UUID
	AssignedVehicleID *kernel.UUID
}

// containsFold reports whether any field contains the lowercased term. An empty
// term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
