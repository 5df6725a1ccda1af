package http

import (
	"net/http"

	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListTrips handles GET /api/v1/trips.
func (s *Server) ListTrips(ctx echo.Context, params servers.ListTripsParams) error {
	var status *trip.Status
	if params.Status != nil {
		parsed, err := trip.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListTripsQuery(derefString(params.Search), status, params.SlaBreached != nil && *params.SlaBreached)
	if err != nil {
		return s.fail(ctx, err)
	}

	trips, err := s.h.ListTrips.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Trip, len(trips))
	for i, t := range trips {
		response[i] = toTrip(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTrip handles POST /api/v1/trips.
func (s *Server) CreateTrip(ctx echo.Context, params servers.ActorParams) error {
	var body servers.CreateTripJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := toOptionalUUID(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	vehicleID, err := toOptionalUUID(body.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	details := trip.Details{
		Name:                body.Name,
		Origin:              body.Origin,
		Destination:         body.Destination,
		ScheduledTime:       body.ScheduledTime,
		EstimatedCompletion: body.EstimatedCompletion,
		DriverID:            driverID,
		VehicleID:           vehicleID,
	}
	if body.Notes != nil {
		details.Notes = *body.Notes
	}

	tripID := kernel.NewUUID()
	cmd, err := commands.NewCreateTripCommand(tripID, details, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithTrip(ctx, http.StatusCreated, tripID)
}

// GetTrip handles GET /api/v1/trips/{tripId}.
func (s *Server) GetTrip(ctx echo.Context, tripId servers.TripId) error {
	id, err := toUUID(tripId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithTrip(ctx, http.StatusOK, id)
}

// UpdateTrip handles PATCH /api/v1/trips/{tripId}.
func (s *Server) UpdateTrip(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	id, err := toUUID(tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateTripJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := toOptionalUUID(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}
	vehicleID, err := toOptionalUUID(body.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	patch := trip.Patch{
		Name:                body.Name,
		Origin:              body.Origin,
		Destination:         body.Destination,
		ScheduledTime:       body.ScheduledTime,
		EstimatedCompletion: body.EstimatedCompletion,
		Notes:               body.Notes,
		DriverID:            driverID,
		VehicleID:           vehicleID,
	}

	cmd, err := commands.NewUpdateTripCommand(id, patch, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithTrip(ctx, http.StatusOK, id)
}

// ApproveDispatch handles POST /api/v1/trips/{tripId}/approve.
func (s *Server) ApproveDispatch(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	return s.tripAction(ctx, tripId, func(id kernel.UUID) error {
		cmd, err := commands.NewApproveDispatchCommand(id, actorOf(params))
		if err != nil {
			return err
		}
		return s.h.ApproveDispatch.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectTrip handles POST /api/v1/trips/{tripId}/reject.
func (s *Server) RejectTrip(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	return s.tripAction(ctx, tripId, func(id kernel.UUID) error {
		cmd, err := commands.NewRejectTripCommand(id, actorOf(params))
		if err != nil {
			return err
		}
		return s.h.RejectTrip.Handle(ctx.Request().Context(), cmd)
	})
}

// StartTrip handles POST /api/v1/trips/{tripId}/start.
func (s *Server) StartTrip(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	return s.tripAction(ctx, tripId, func(id kernel.UUID) error {
		cmd, err := commands.NewStartTripCommand(id, actorOf(params))
		if err != nil {
			return err
		}
		return s.h.StartTrip.Handle(ctx.Request().Context(), cmd)
	})
}

// ReportDelay handles POST /api/v1/trips/{tripId}/delay. The body is optional.
func (s *Server) ReportDelay(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	var body servers.ReportDelayJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	return s.tripAction(ctx, tripId, func(id kernel.UUID) error {
		cmd, err := commands.NewReportDelayCommand(id, reason, actorOf(params))
		if err != nil {
			return err
		}
		return s.h.ReportDelay.Handle(ctx.Request().Context(), cmd)
	})
}

// ResumeTrip handles POST /api/v1/trips/{tripId}/resume.
func (s *Server) ResumeTrip(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	return s.tripAction(ctx, tripId, func(id kernel.UUID) error {
		cmd, err := commands.NewResumeTripCommand(id, actorOf(params))
		if err != nil {
			return err
		}
		return s.h.ResumeTrip.Handle(ctx.Request().Context(), cmd)
	})
}

// AttachDocument handles POST /api/v1/trips/{tripId}/documents.
func (s *Server) AttachDocument(ctx echo.Context, tripId servers.TripId, params servers.ActorParams) error {
	id, err := toUUID(tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AttachDocumentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var url string
	if body.Url != nil {
		url = *body.Url
	}
	doc, err := trip.NewDocument(body.Id, body.Name, url, s.clock.Now())
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAttachDocumentCommand(id, doc, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AttachDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithTrip(ctx, http.StatusCreated, id)
}

// RemoveDocument handles DELETE /api/v1/trips/{tripId}/documents/{documentId}.
func (s *Server) RemoveDocument(
	ctx echo.Context,
	tripId servers.TripId,
	documentId string,
	params servers.ActorParams,
) error {
	id, err := toUUID(tripId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveDocumentCommand(id, documentId, actorOf(params))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// tripAction runs a body-less trigger and answers with the resulting trip.
func (s *Server) tripAction(ctx echo.Context, tripId servers.TripId, run func(id kernel.UUID) error) error {
	id, err := toUUID(tripId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = run(id); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithTrip(ctx, http.StatusOK, id)
}

func (s *Server) respondWithTrip(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetTripQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.h.GetTrip.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toTrip(t))
}

func toTrip(t queries.TripResponse) servers.Trip {
	documents := make([]servers.Document, len(t.Documents))
	for i, d := range t.Documents {
		documents[i] = servers.Document{
			Id:         d.ID,
			Name:       d.Name,
			Url:        optionalString(d.URL),
			UploadedAt: d.UploadedAt,
		}
	}

	return servers.Trip{
		Id:                  t.ID.Bytes(),
		Name:                t.Name,
		Origin:              t.Origin,
		Destination:         t.Destination,
		Notes:               optionalString(t.Notes),
		Status:              servers.TripStatus(t.Status),
		Stage:               t.Stage,
		Progress:            t.Progress,
		SlaBreached:         t.SLABreached,
		SlaDueDate:          t.SLADueDate,
		ScheduledTime:       t.ScheduledTime,
		EstimatedCompletion: t.EstimatedCompletion,
		ActualStartTime:     t.ActualStartTime,
		ActualEndTime:       t.ActualEndTime,
		DriverId:            fromOptionalUUID(t.DriverID),
		VehicleId:           fromOptionalUUID(t.VehicleID),
		CreatedAt:           t.CreatedAt,
		LastUpdate:          t.LastUpdate,
		Documents:           documents,
	}
}
