package queries

import (
	"errors"

	"tripflow/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// DashboardResponse is the operations overview. ActiveTrips counts ASSIGNED,
// IN_PROGRESS and DELAYED trips.
type DashboardResponse struct {
	ActiveTrips       int
	PendingTrips      int
	SLABreachedTrips  int
	AvailableVehicles int
	AvailableDrivers  int
}
