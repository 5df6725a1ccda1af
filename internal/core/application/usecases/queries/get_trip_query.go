// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built from committed snapshots; they never block
// writers for longer than a copy.
package queries

import (
	"errors"
	"time"

	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/core/domain/services"
	"tripflow/internal/pkg/guard"
)

var ErrGetTripQueryIsNotConstructed = errors.New(
	"GetTripQuery must be created via NewGetTripQuery constructor",
)

// GetTripQuery retrieves one trip by id.
//
// Example:
//
//	query, err := NewGetTripQuery(tripID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown trip
//	}
type GetTripQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTripQuery(tripID kernel.UUID) (GetTripQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripQuery{}, err
	}
	return GetTripQuery{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTripQuery) Validate() error {
	return q.guard.Validate(ErrGetTripQueryIsNotConstructed)
}

func (q GetTripQuery) TripID() kernel.UUID {
	return q.tripID
}

// DocumentResponse is the read model of an attached document.
type DocumentResponse struct {
	ID         string
	Name       string
	URL        string
	UploadedAt time.Time
}

// TripResponse is the read model of a trip. SLADueDate is set only while a
// stage SLA is monitored (PENDING in REQUESTED, ASSIGNED in ASSIGNED).
type TripResponse struct {
	ID                  kernel.UUID
	Name                string
	Origin              string
	Destination         string
	Notes               string
	Status              string
	Stage               string
	Progress            int
	SLABreached         bool
	SLADueDate          *time.Time
	ScheduledTime       time.Time
	EstimatedCompletion *time.Time
	ActualStartTime     *time.Time
	ActualEndTime       *time.Time
	DriverID            *kernel.UUID
	VehicleID           *kernel.UUID
	CreatedAt           time.Time
	LastUpdate          time.Time
	Documents           []DocumentResponse
}

func newTripResponse(t *trip.Trip, policy services.SLAPolicy) TripResponse {
	resp := TripResponse{
		ID:                  t.ID(),
		Name:                t.Name(),
		Origin:              t.Origin(),
		Destination:         t.Destination(),
		Notes:               t.Notes(),
		Status:              t.Status().String(),
		Stage:               t.Stage().String(),
		Progress:            t.Progress(),
		SLABreached:         t.SLABreached(),
		ScheduledTime:       t.ScheduledTime(),
		EstimatedCompletion: t.EstimatedCompletion(),
		ActualStartTime:     t.ActualStartTime(),
		ActualEndTime:       t.ActualEndTime(),
		DriverID:            t.DriverID(),
		VehicleID:           t.VehicleID(),
		CreatedAt:           t.CreatedAt(),
		LastUpdate:          t.LastUpdate(),
		Documents:           make([]DocumentResponse, 0, len(t.Documents())),
	}

	if due, ok := policy.DueDate(t); ok {
		resp.SLADueDate = &due
	}

	for _, d := range t.Documents() {
		resp.Documents = append(resp.Documents, DocumentResponse{
			ID:         d.ID(),
			Name:       d.Name(),
			URL:        d.URL(),
			UploadedAt: d.UploadedAt(),
		})
	}

	return resp
}
