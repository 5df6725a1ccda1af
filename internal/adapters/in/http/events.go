package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// streamBuffer is the per-connection subscription buffer of the activity stream.
const streamBuffer = 128

// ListAuditLog handles GET /api/v1/audit/{entityKind}/{entityId}.
func (s *Server) ListAuditLog(
	ctx echo.Context,
	entityKind servers.ListAuditLogParamsEntityKind,
	entityId openapi_types.UUID,
) error {
	kind, err := audit.ParseEntityKind(string(entityKind))
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toUUID(entityId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListAuditLogQuery(kind, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.h.ListAuditLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.AuditEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.AuditEntry{
			Id:         e.ID.Bytes(),
			EntityKind: e.EntityKind,
			EntityId:   e.EntityID.Bytes(),
			Action:     e.Action,
			Details:    e.Details,
			User:       e.User,
			Type:       servers.AuditEntryType(e.Type),
			Timestamp:  e.Timestamp,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListActivity handles GET /api/v1/activity.
func (s *Server) ListActivity(ctx echo.Context, params servers.ListActivityParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListActivityQuery(limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	activities, err := s.h.ListActivity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Activity, len(activities))
	for i, a := range activities {
		response[i] = toActivity(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// StreamActivity handles GET /api/v1/activity/stream. Each committed activity
// is written as one "activity" event until the client disconnects or the bus
// closes. Audit entries are not streamed.
func (s *Server) StreamActivity(ctx echo.Context) error {
	events, unsubscribe := s.subscriber.Subscribe(streamBuffer)
	defer unsubscribe()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			activity, isActivity := ev.(audit.Activity)
			if !isActivity {
				continue
			}

			payload, err := json.Marshal(toActivity(queries.NewActivityResponse(activity)))
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(w, "id: %s\nevent: activity\ndata: %s\n\n", activity.ID().String(), payload); err != nil {
				s.logger.DebugContext(ctx.Request().Context(), "activity stream closed", "error", err)
				return nil
			}
			w.Flush()
		}
	}
}

// GetWorkflow handles GET /api/v1/workflow.
func (s *Server) GetWorkflow(ctx echo.Context) error {
	stages, err := s.h.GetWorkflow.Handle(ctx.Request().Context(), queries.NewGetWorkflowQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Stage, len(stages))
	for i, st := range stages {
		response[i] = servers.Stage{
			Id:       st.ID,
			Label:    st.Label,
			SlaHours: float32(st.SLA.Hours()),
			Roles:    st.Roles,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	counts, err := s.h.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Dashboard{
		ActiveTrips:       counts.ActiveTrips,
		PendingTrips:      counts.PendingTrips,
		SlaBreachedTrips:  counts.SLABreachedTrips,
		AvailableVehicles: counts.AvailableVehicles,
		AvailableDrivers:  counts.AvailableDrivers,
	})
}

func toActivity(a queries.ActivityResponse) servers.Activity {
	return servers.Activity{
		Id:        a.ID.Bytes(),
		Type:      a.Type,
		Message:   a.Message,
		Timestamp: a.Timestamp,
	}
}
