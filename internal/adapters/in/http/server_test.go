package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripflow/cmd"
	"tripflow/internal/adapters/out/memory"
	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/generated/servers"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

type api struct {
	t    *testing.T
	e    *echo.Echo
	root *cmd.CompositionRoot
}

func newAPI(t *testing.T) *api {
	t.Helper()
	root := cmd.NewCompositionRoot(
		cmd.Config{SLAMonitorInterval: time.Second},
		memory.NewEventLog(),
		workflow.DefaultDefinition(),
		clockwork.NewFakeClockAt(t0),
		slog.New(slog.DiscardHandler),
	)
	t.Cleanup(root.Close)

	e := echo.New()
	root.CreateHTTPServer().Register(e)
	return &api{t: t, e: e, root: root}
}

func (a *api) do(method, path string, body any, role string) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *api) createTrip(name string) servers.Trip {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/trips", servers.NewTrip{
		Name:          name,
		Origin:        "Depot A",
		Destination:   "Store 12",
		ScheduledTime: t0.Add(time.Hour),
	}, "Dispatcher")
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Trip](a.t, rec)
}

func TestServer_Health(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_CreateAndApprove(t *testing.T) {
	// Arrange
	a := newAPI(t)
	created := a.createTrip("Morning run")

	// Act
	rec := a.do(http.MethodPost, "/api/v1/trips/"+created.Id.String()+"/approve", nil, "Dispatcher")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decode[servers.Trip](t, rec)
	assert.Equal(t, servers.PENDING, created.Status)
	assert.Equal(t, "REQUESTED", created.Stage)
	require.NotNil(t, created.SlaDueDate)
	assert.True(t, t0.Add(2*time.Hour).Equal(*created.SlaDueDate))

	assert.Equal(t, servers.ASSIGNED, approved.Status)
	assert.Equal(t, "ASSIGNED", approved.Stage)
	require.NotNil(t, approved.SlaDueDate)
	assert.True(t, t0.Add(time.Hour).Equal(*approved.SlaDueDate))

	rec = a.do(http.MethodGet, "/api/v1/audit/trip/"+created.Id.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]servers.AuditEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "New Trip Created", entries[0].Action)
	assert.Equal(t, "Trip Approved", entries[1].Action)
	assert.Equal(t, "Dispatcher", entries[1].User)
}

func TestServer_ApproveTwiceIsConflict(t *testing.T) {
	a := newAPI(t)
	created := a.createTrip("Morning run")
	path := "/api/v1/trips/" + created.Id.String() + "/approve"
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, path, nil, "").Code)

	rec := a.do(http.MethodPost, path, nil, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode[servers.Error](t, rec)
	assert.Equal(t, int32(http.StatusConflict), body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestServer_AnonymousActor(t *testing.T) {
	a := newAPI(t)
	created := a.createTrip("Morning run")

	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/v1/trips/"+created.Id.String()+"/reject", nil, "").Code)

	entries := decode[[]servers.AuditEntry](t, a.do(http.MethodGet, "/api/v1/audit/trip/"+created.Id.String(), nil, ""))
	require.Len(t, entries, 2)
	assert.Equal(t, "Trip Rejected", entries[1].Action)
	assert.Equal(t, "Anonymous", entries[1].User)
}

func TestServer_CreateWithoutNameIsBadRequest(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/v1/trips", servers.NewTrip{
		Origin:        "Depot A",
		Destination:   "Store 12",
		ScheduledTime: t0,
	}, "Dispatcher")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	activity := decode[[]servers.Activity](t, a.do(http.MethodGet, "/api/v1/activity", nil, ""))
	assert.Empty(t, activity)
}

func TestServer_NotFoundAndMalformedIDs(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown trip", http.MethodGet, "/api/v1/trips/" + "3f1b2c9a-8a41-4c55-9d3e-1f2a3b4c5d6e", http.StatusNotFound},
		{"unknown trip action", http.MethodPost, "/api/v1/trips/3f1b2c9a-8a41-4c55-9d3e-1f2a3b4c5d6e/start", http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/v1/trips/not-a-uuid", http.StatusBadRequest},
		{"unknown entity kind", http.MethodGet, "/api/v1/audit/order/3f1b2c9a-8a41-4c55-9d3e-1f2a3b4c5d6e", http.StatusBadRequest},
		{"limit out of range", http.MethodGet, "/api/v1/activity?limit=501", http.StatusBadRequest},
		{"unknown status filter", http.MethodGet, "/api/v1/trips?status=LOST", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(tt.method, tt.path, nil, "")
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_ListTripsFilters(t *testing.T) {
	a := newAPI(t)
	first := a.createTrip("Harbour shuttle")
	a.createTrip("Airport transfer")
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/v1/trips/"+first.Id.String()+"/approve", nil, "").Code)

	all := decode[[]servers.Trip](t, a.do(http.MethodGet, "/api/v1/trips", nil, ""))
	assigned := decode[[]servers.Trip](t, a.do(http.MethodGet, "/api/v1/trips?status=ASSIGNED", nil, ""))
	searched := decode[[]servers.Trip](t, a.do(http.MethodGet, "/api/v1/trips?search=airport", nil, ""))

	assert.Len(t, all, 2)
	require.Len(t, assigned, 1)
	assert.Equal(t, first.Id, assigned[0].Id)
	require.Len(t, searched, 1)
	assert.Equal(t, "Airport transfer", searched[0].Name)
}

func TestServer_UpdateAndDocuments(t *testing.T) {
	a := newAPI(t)
	created := a.createTrip("Morning run")
	base := "/api/v1/trips/" + created.Id.String()
	notes := "Gate 4"

	rec := a.do(http.MethodPatch, base, servers.TripPatch{Notes: &notes}, "Dispatcher")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Gate 4", *decode[servers.Trip](t, rec).Notes)

	rec = a.do(http.MethodPatch, base, servers.TripPatch{}, "Dispatcher")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, base+"/documents", servers.NewDocument{Id: "doc-1", Name: "manifest.pdf"}, "Dispatcher")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	withDoc := decode[servers.Trip](t, rec)
	require.Len(t, withDoc.Documents, 1)
	assert.Equal(t, "manifest.pdf", withDoc.Documents[0].Name)
	assert.True(t, t0.Equal(withDoc.Documents[0].UploadedAt))

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, base+"/documents/doc-1", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, base+"/documents/doc-1", nil, "").Code)
}

func TestServer_Fleet(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/v1/vehicles", servers.NewVehicle{
		LicensePlate: "TRK-001",
		Make:         "Volvo",
		Model:        "FH16",
	}, "Fleet Manager")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[servers.Vehicle](t, rec)
	assert.Equal(t, servers.VehicleStatusAVAILABLE, registered.Status)

	statusPath := "/api/v1/vehicles/" + registered.Id.String() + "/status"
	assert.Equal(t, http.StatusBadRequest,
		a.do(http.MethodPost, statusPath, servers.StatusChange{Status: "PARKED"}, "").Code)
	assert.Equal(t, http.StatusNoContent,
		a.do(http.MethodPost, statusPath, servers.StatusChange{Status: "MAINTENANCE"}, "").Code)
	assert.Equal(t, http.StatusConflict,
		a.do(http.MethodPost, statusPath, servers.StatusChange{Status: "MAINTENANCE"}, "").Code)

	vehicles := decode[[]servers.Vehicle](t, a.do(http.MethodGet, "/api/v1/vehicles", nil, ""))
	require.Len(t, vehicles, 1)
	assert.Equal(t, servers.VehicleStatusMAINTENANCE, vehicles[0].Status)

	rec = a.do(http.MethodPost, "/api/v1/drivers", servers.NewDriver{Name: "Ana", License: "B-123"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	drivers := decode[[]servers.Driver](t, a.do(http.MethodGet, "/api/v1/drivers", nil, ""))
	require.Len(t, drivers, 1)
	assert.Equal(t, "Ana", drivers[0].Name)
}

func TestServer_FleetFilters(t *testing.T) {
	a := newAPI(t)
	for _, plate := range []string{"TRK-001", "VAN-002"} {
		rec := a.do(http.MethodPost, "/api/v1/vehicles", servers.NewVehicle{
			LicensePlate: plate,
			Make:         "Volvo",
			Model:        "FH16",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := a.do(http.MethodPost, "/api/v1/drivers", servers.NewDriver{Name: "Ana", License: "B-123"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "vehicle search", path: "/api/v1/vehicles?search=van", expected: 1},
		{name: "vehicle status", path: "/api/v1/vehicles?status=AVAILABLE", expected: 2},
		{name: "vehicle status mismatch", path: "/api/v1/vehicles?status=OFFLINE&search=trk", expected: 0},
		{name: "driver search", path: "/api/v1/drivers?search=b-1", expected: 1},
		{name: "driver status", path: "/api/v1/drivers?status=ON_BREAK", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Len(t, decode[[]map[string]any](t, rec), tt.expected)
		})
	}

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/vehicles?status=PARKED", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/api/v1/drivers?status=ASLEEP", nil, "").Code)
}

func TestServer_Dashboard(t *testing.T) {
	a := newAPI(t)
	approved := a.createTrip("Morning run")
	a.createTrip("Night run")
	require.Equal(t, http.StatusOK,
		a.do(http.MethodPost, "/api/v1/trips/"+approved.Id.String()+"/approve", nil, "Dispatcher").Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/vehicles", servers.NewVehicle{
		LicensePlate: "TRK-001",
		Make:         "Volvo",
		Model:        "FH16",
	}, "").Code)

	rec := a.do(http.MethodGet, "/api/v1/dashboard", nil, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.Dashboard{
		ActiveTrips:       1,
		PendingTrips:      1,
		AvailableVehicles: 1,
	}, decode[servers.Dashboard](t, rec))
}

func TestServer_Workflow(t *testing.T) {
	a := newAPI(t)

	stages := decode[[]servers.Stage](t, a.do(http.MethodGet, "/api/v1/workflow", nil, ""))

	require.Len(t, stages, 4)
	assert.Equal(t, "REQUESTED", stages[0].Id)
	assert.InDelta(t, 2.0, stages[0].SlaHours, 0.001)
	assert.Equal(t, "COMPLETED", stages[3].Id)
}

func TestServer_StreamActivity(t *testing.T) {
	a := newAPI(t)
	srv := httptest.NewServer(a.e)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/activity/stream", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	created := a.createTrip("Streamed run")

	scanner := bufio.NewScanner(resp.Body)
	var data string
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	require.NotEmpty(t, data)

	var activity servers.Activity
	require.NoError(t, json.Unmarshal([]byte(data), &activity))
	assert.Equal(t, "trip_created", activity.Type)
	assert.Contains(t, activity.Message, created.Name)
}
