package queries

import (
	"errors"

	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/guard"
)

var ErrListTripsQueryIsNotConstructed = errors.New(
	"ListTripsQuery must be created via NewListTripsQuery constructor",
)

// ListTripsQuery lists trips in creation order, narrowed by an optional
// free-text search, a status and the SLA breach flag.
type ListTripsQuery struct {
	filter ports.TripFilter

	guard guard.ConstructorGuard
}

// NewListTripsQuery builds the query. status may be nil for every status.
func NewListTripsQuery(search string, status *trip.Status, slaBreachedOnly bool) (ListTripsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListTripsQuery{}, err
		}
	}

	return ListTripsQuery{
		filter: ports.TripFilter{
			Search:          search,
			Status:          status,
			SLABreachedOnly: slaBreachedOnly,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListTripsQuery) Validate() error {
	return q.guard.Validate(ErrListTripsQueryIsNotConstructed)
}

func (q ListTripsQuery) Filter() ports.TripFilter {
	return q.filter
}
