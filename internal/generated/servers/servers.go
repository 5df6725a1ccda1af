// Package servers holds the echo server bindings for api/openapi.yml: the wire
// models, ServerInterface and the wrapper that binds path, query and header
// parameters with the oapi-codegen runtime. It follows the oapi-codegen echo
// layout and is maintained by hand; keep it in step with api/openapi.yml.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for AuditEntryType.
const (
	AuditEntryTypeAction AuditEntryType = "action"
	AuditEntryTypeInfo   AuditEntryType = "info"
	AuditEntryTypeUpdate AuditEntryType = "update"
)

// Defines values for DriverStatus.
const (
	DriverStatusAVAILABLE DriverStatus = "AVAILABLE"
	DriverStatusONBREAK   DriverStatus = "ON_BREAK"
	DriverStatusONTRIP    DriverStatus = "ON_TRIP"
	DriverStatusOFFLINE   DriverStatus = "OFFLINE"
)

// Defines values for TripStatus.
const (
	ASSIGNED   TripStatus = "ASSIGNED"
	CANCELLED  TripStatus = "CANCELLED"
	COMPLETED  TripStatus = "COMPLETED"
	DELAYED    TripStatus = "DELAYED"
	INPROGRESS TripStatus = "IN_PROGRESS"
	PENDING    TripStatus = "PENDING"
)

// Defines values for VehicleStatus.
const (
	VehicleStatusAVAILABLE   VehicleStatus = "AVAILABLE"
	VehicleStatusINUSE       VehicleStatus = "IN_USE"
	VehicleStatusMAINTENANCE VehicleStatus = "MAINTENANCE"
	VehicleStatusOFFLINE     VehicleStatus = "OFFLINE"
)

// Defines values for ListAuditLogParamsEntityKind.
const (
	Driver_  ListAuditLogParamsEntityKind = "driver"
	Trip_    ListAuditLogParamsEntityKind = "trip"
	Vehicle_ ListAuditLogParamsEntityKind = "vehicle"
)

// Defines values for ListDriversParamsStatus.
const (
	ListDriversParamsStatusAVAILABLE ListDriversParamsStatus = "AVAILABLE"
	ListDriversParamsStatusONBREAK   ListDriversParamsStatus = "ON_BREAK"
	ListDriversParamsStatusONTRIP    ListDriversParamsStatus = "ON_TRIP"
	ListDriversParamsStatusOFFLINE   ListDriversParamsStatus = "OFFLINE"
)

// Defines values for ListVehiclesParamsStatus.
const (
	ListVehiclesParamsStatusAVAILABLE   ListVehiclesParamsStatus = "AVAILABLE"
	ListVehiclesParamsStatusINUSE       ListVehiclesParamsStatus = "IN_USE"
	ListVehiclesParamsStatusMAINTENANCE ListVehiclesParamsStatus = "MAINTENANCE"
	ListVehiclesParamsStatusOFFLINE     ListVehiclesParamsStatus = "OFFLINE"
)

// Activity defines model for Activity.
type Activity struct {
	Id        openapi_types.UUID `json:"id"`
	Message   string             `json:"message"`
	Timestamp time.Time          `json:"timestamp"`
	Type      string             `json:"type"`
}

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	Action     string             `json:"action"`
	Details    string             `json:"details"`
	EntityId   openapi_types.UUID `json:"entityId"`
	EntityKind string             `json:"entityKind"`
	Id         openapi_types.UUID `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Type       AuditEntryType     `json:"type"`
	User       string             `json:"user"`
}

// AuditEntryType defines model for AuditEntry.Type.
type AuditEntryType string

// DelayReport defines model for DelayReport.
type DelayReport struct {
	Reason *string `json:"reason,omitempty"`
}

// Document defines model for Document.
type Document struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
	Url        *string   `json:"url,omitempty"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	// ActiveTrips ASSIGNED, IN_PROGRESS and DELAYED trips
	ActiveTrips       int `json:"activeTrips"`
	AvailableDrivers  int `json:"availableDrivers"`
	AvailableVehicles int `json:"availableVehicles"`
	PendingTrips      int `json:"pendingTrips"`
	SlaBreachedTrips  int `json:"slaBreachedTrips"`
}

// Driver defines model for Driver.
type Driver struct {
	AssignedVehicleId *openapi_types.UUID `json:"assignedVehicleId,omitempty"`
	CurrentTripId     *openapi_types.UUID `json:"currentTripId,omitempty"`
	Id                openapi_types.UUID  `json:"id"`
	License           string              `json:"license"`
	Name              string              `json:"name"`
	Status            DriverStatus        `json:"status"`
}

// DriverStatus defines model for Driver.Status.
type DriverStatus string

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewDocument defines model for NewDocument.
type NewDocument struct {
	Id   string  `json:"id"`
	Name string  `json:"name"`
	Url  *string `json:"url,omitempty"`
}

// NewDriver defines model for NewDriver.
type NewDriver struct {
	AssignedVehicleId *openapi_types.UUID `json:"assignedVehicleId,omitempty"`
	License           string              `json:"license"`
	Name              string              `json:"name"`
}

// NewTrip defines model for NewTrip.
type NewTrip struct {
	Destination         string              `json:"destination"`
	DriverId            *openapi_types.UUID `json:"driverId,omitempty"`
	EstimatedCompletion *time.Time          `json:"estimatedCompletion,omitempty"`
	Name                string              `json:"name"`
	Notes               *string             `json:"notes,omitempty"`
	Origin              string              `json:"origin"`
	ScheduledTime       time.Time           `json:"scheduledTime"`
	VehicleId           *openapi_types.UUID `json:"vehicleId,omitempty"`
}

// NewVehicle defines model for NewVehicle.
type NewVehicle struct {
	DriverId     *openapi_types.UUID `json:"driverId,omitempty"`
	LicensePlate string              `json:"licensePlate"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
}

// Stage defines model for Stage.
type Stage struct {
	Id       string   `json:"id"`
	Label    string   `json:"label"`
	Roles    []string `json:"roles"`
	SlaHours float32  `json:"slaHours"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string              `json:"status"`
	TripId *openapi_types.UUID `json:"tripId,omitempty"`
}

// Trip defines model for Trip.
type Trip struct {
	ActualEndTime       *time.Time          `json:"actualEndTime,omitempty"`
	ActualStartTime     *time.Time          `json:"actualStartTime,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	Destination         string              `json:"destination"`
	Documents           []Document          `json:"documents"`
	DriverId            *openapi_types.UUID `json:"driverId,omitempty"`
	EstimatedCompletion *time.Time          `json:"estimatedCompletion,omitempty"`
	Id                  openapi_types.UUID  `json:"id"`
	LastUpdate          time.Time           `json:"lastUpdate"`
	Name                string              `json:"name"`
	Notes               *string             `json:"notes,omitempty"`
	Origin              string              `json:"origin"`
	Progress            int                 `json:"progress"`
	ScheduledTime       time.Time           `json:"scheduledTime"`
	SlaBreached         bool                `json:"slaBreached"`
	SlaDueDate          *time.Time          `json:"slaDueDate,omitempty"`
	Stage               string              `json:"stage"`
	Status              TripStatus          `json:"status"`
	VehicleId           *openapi_types.UUID `json:"vehicleId,omitempty"`
}

// TripPatch defines model for TripPatch.
type TripPatch struct {
	Destination         *string             `json:"destination,omitempty"`
	DriverId            *openapi_types.UUID `json:"driverId,omitempty"`
	EstimatedCompletion *time.Time          `json:"estimatedCompletion,omitempty"`
	Name                *string             `json:"name,omitempty"`
	Notes               *string             `json:"notes,omitempty"`
	Origin              *string             `json:"origin,omitempty"`
	ScheduledTime       *time.Time          `json:"scheduledTime,omitempty"`
	VehicleId           *openapi_types.UUID `json:"vehicleId,omitempty"`
}

// TripStatus defines model for TripStatus.
type TripStatus string

// Vehicle defines model for Vehicle.
type Vehicle struct {
	DriverId     *openapi_types.UUID `json:"driverId,omitempty"`
	Id           openapi_types.UUID  `json:"id"`
	LicensePlate string              `json:"licensePlate"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Status       VehicleStatus       `json:"status"`
}

// VehicleStatus defines model for Vehicle.Status.
type VehicleStatus string

// TripId defines model for TripId.
type TripId = openapi_types.UUID

// UserRole defines model for UserRole.
type UserRole = string

// ActorParams carries the X-User-Role header shared by every mutating operation.
type ActorParams struct {
	// XUserRole Actor recorded in the audit log. Defaults to Anonymous.
	XUserRole *UserRole `json:"X-User-Role,omitempty"`
}

// ListTripsParams defines parameters for ListTrips.
type ListTripsParams struct {
	Search      *string     `form:"search,omitempty" json:"search,omitempty"`
	Status      *TripStatus `form:"status,omitempty" json:"status,omitempty"`
	SlaBreached *bool       `form:"slaBreached,omitempty" json:"slaBreached,omitempty"`
}

// ListAuditLogParamsEntityKind defines parameters for ListAuditLog.
type ListAuditLogParamsEntityKind string

// ListDriversParams defines parameters for ListDrivers.
type ListDriversParams struct {
	// Search Matches name, license and id, case-insensitive.
	Search *string                   `form:"search,omitempty" json:"search,omitempty"`
	Status *ListDriversParamsStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListDriversParamsStatus defines parameters for ListDrivers.
type ListDriversParamsStatus string

// ListVehiclesParams defines parameters for ListVehicles.
type ListVehiclesParams struct {
	// Search Matches plate, make, model and id, case-insensitive.
	Search *string                    `form:"search,omitempty" json:"search,omitempty"`
	Status *ListVehiclesParamsStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListVehiclesParamsStatus defines parameters for ListVehicles.
type ListVehiclesParamsStatus string

// ListActivityParams defines parameters for ListActivity.
type ListActivityParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateTripJSONRequestBody defines body for CreateTrip for application/json ContentType.
type CreateTripJSONRequestBody = NewTrip

// UpdateTripJSONRequestBody defines body for UpdateTrip for application/json ContentType.
type UpdateTripJSONRequestBody = TripPatch

// ReportDelayJSONRequestBody defines body for ReportDelay for application/json ContentType.
type ReportDelayJSONRequestBody = DelayReport

// AttachDocumentJSONRequestBody defines body for AttachDocument for application/json ContentType.
type AttachDocumentJSONRequestBody = NewDocument

// RegisterVehicleJSONRequestBody defines body for RegisterVehicle for application/json ContentType.
type RegisterVehicleJSONRequestBody = NewVehicle

// RegisterDriverJSONRequestBody defines body for RegisterDriver for application/json ContentType.
type RegisterDriverJSONRequestBody = NewDriver

// ChangeVehicleStatusJSONRequestBody defines body for ChangeVehicleStatus for application/json ContentType.
type ChangeVehicleStatusJSONRequestBody = StatusChange

// ChangeDriverStatusJSONRequestBody defines body for ChangeDriverStatus for application/json ContentType.
type ChangeDriverStatusJSONRequestBody = StatusChange

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/activity)
	ListActivity(ctx echo.Context, params ListActivityParams) error
	// Server-sent events with every new activity
	// (GET /api/v1/activity/stream)
	StreamActivity(ctx echo.Context) error

	// (GET /api/v1/audit/{entityKind}/{entityId})
	ListAuditLog(ctx echo.Context, entityKind ListAuditLogParamsEntityKind, entityId openapi_types.UUID) error

	// Trip and fleet counts for the operations overview
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context) error

	// (GET /api/v1/drivers)
	ListDrivers(ctx echo.Context, params ListDriversParams) error

	// (POST /api/v1/drivers)
	RegisterDriver(ctx echo.Context, params ActorParams) error

	// (POST /api/v1/drivers/{driverId}/status)
	ChangeDriverStatus(ctx echo.Context, driverId openapi_types.UUID, params ActorParams) error
	// List trips in creation order
	// (GET /api/v1/trips)
	ListTrips(ctx echo.Context, params ListTripsParams) error
	// Create a trip in status PENDING
	// (POST /api/v1/trips)
	CreateTrip(ctx echo.Context, params ActorParams) error

	// (GET /api/v1/trips/{tripId})
	GetTrip(ctx echo.Context, tripId TripId) error

	// (PATCH /api/v1/trips/{tripId})
	UpdateTrip(ctx echo.Context, tripId TripId, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/approve)
	ApproveDispatch(ctx echo.Context, tripId TripId, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/delay)
	ReportDelay(ctx echo.Context, tripId TripId, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/documents)
	AttachDocument(ctx echo.Context, tripId TripId, params ActorParams) error

	// (DELETE /api/v1/trips/{tripId}/documents/{documentId})
	RemoveDocument(ctx echo.Context, tripId TripId, documentId string, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/reject)
	RejectTrip(ctx echo.Context, tripId TripId, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/resume)
	ResumeTrip(ctx echo.Context, tripId TripId, params ActorParams) error

	// (POST /api/v1/trips/{tripId}/start)
	StartTrip(ctx echo.Context, tripId TripId, params ActorParams) error

	// (GET /api/v1/vehicles)
	ListVehicles(ctx echo.Context, params ListVehiclesParams) error

	// (POST /api/v1/vehicles)
	RegisterVehicle(ctx echo.Context, params ActorParams) error

	// (POST /api/v1/vehicles/{vehicleId}/status)
	ChangeVehicleStatus(ctx echo.Context, vehicleId openapi_types.UUID, params ActorParams) error
	// Workflow stages in order
	// (GET /api/v1/workflow)
	GetWorkflow(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListActivity converts echo context to params.
func (w *ServerInterfaceWrapper) ListActivity(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListActivityParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListActivity(ctx, params)
	return err
}

// StreamActivity converts echo context to params.
func (w *ServerInterfaceWrapper) StreamActivity(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StreamActivity(ctx)
	return err
}

// ListAuditLog converts echo context to params.
func (w *ServerInterfaceWrapper) ListAuditLog(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "entityKind" -------------
	var entityKind ListAuditLogParamsEntityKind

	err = runtime.BindStyledParameterWithOptions("simple", "entityKind", ctx.Param("entityKind"), &entityKind, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityKind: %s", err))
	}

	// ------------- Path parameter "entityId" -------------
	var entityId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "entityId", ctx.Param("entityId"), &entityId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAuditLog(ctx, entityKind, entityId)
	return err
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboard(ctx)
	return err
}

// ListDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListDriversParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDrivers(ctx, params)
	return err
}

// RegisterDriver converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterDriver(ctx echo.Context) error {
	var err error

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterDriver(ctx, params)
	return err
}

// ChangeDriverStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeDriverStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "driverId" -------------
	var driverId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeDriverStatus(ctx, driverId, params)
	return err
}

// ListTrips converts echo context to params.
func (w *ServerInterfaceWrapper) ListTrips(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListTripsParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "slaBreached" -------------

	err = runtime.BindQueryParameter("form", true, false, "slaBreached", ctx.QueryParams(), &params.SlaBreached)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter slaBreached: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListTrips(ctx, params)
	return err
}

// CreateTrip converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTrip(ctx echo.Context) error {
	var err error

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateTrip(ctx, params)
	return err
}

// GetTrip converts echo context to params.
func (w *ServerInterfaceWrapper) GetTrip(ctx echo.Context) error {
	tripId, err := bindTripId(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTrip(ctx, tripId)
	return err
}

// UpdateTrip converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTrip(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateTrip(ctx, tripId, params)
	return err
}

// ApproveDispatch converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveDispatch(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ApproveDispatch(ctx, tripId, params)
	return err
}

// ReportDelay converts echo context to params.
func (w *ServerInterfaceWrapper) ReportDelay(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReportDelay(ctx, tripId, params)
	return err
}

// AttachDocument converts echo context to params.
func (w *ServerInterfaceWrapper) AttachDocument(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AttachDocument(ctx, tripId, params)
	return err
}

// RemoveDocument converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveDocument(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// ------------- Path parameter "documentId" -------------
	var documentId string

	err = runtime.BindStyledParameterWithOptions("simple", "documentId", ctx.Param("documentId"), &documentId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter documentId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveDocument(ctx, tripId, documentId, params)
	return err
}

// RejectTrip converts echo context to params.
func (w *ServerInterfaceWrapper) RejectTrip(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectTrip(ctx, tripId, params)
	return err
}

// ResumeTrip converts echo context to params.
func (w *ServerInterfaceWrapper) ResumeTrip(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ResumeTrip(ctx, tripId, params)
	return err
}

// StartTrip converts echo context to params.
func (w *ServerInterfaceWrapper) StartTrip(ctx echo.Context) error {
	tripId, params, err := bindTripAction(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StartTrip(ctx, tripId, params)
	return err
}

// ListVehicles converts echo context to params.
func (w *ServerInterfaceWrapper) ListVehicles(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListVehiclesParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListVehicles(ctx, params)
	return err
}

// RegisterVehicle converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterVehicle(ctx echo.Context) error {
	var err error

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterVehicle(ctx, params)
	return err
}

// ChangeVehicleStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeVehicleStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "vehicleId" -------------
	var vehicleId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "vehicleId", ctx.Param("vehicleId"), &vehicleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vehicleId: %s", err))
	}

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeVehicleStatus(ctx, vehicleId, params)
	return err
}

// GetWorkflow converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkflow(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkflow(ctx)
	return err
}

func bindTripId(ctx echo.Context) (TripId, error) {
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err := runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return tripId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}
	return tripId, nil
}

func bindTripAction(ctx echo.Context) (TripId, ActorParams, error) {
	tripId, err := bindTripId(ctx)
	if err != nil {
		return tripId, ActorParams{}, err
	}
	params, err := bindActorParams(ctx)
	return tripId, params, err
}

func bindActorParams(ctx echo.Context) (ActorParams, error) {
	var params ActorParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-User-Role" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-Role")]; found {
		var XUserRole UserRole
		n := len(valueList)
		if n != 1 {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-Role, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "X-User-Role", valueList[0], &XUserRole, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-Role: %s", err))
		}

		params.XUserRole = &XUserRole
	}
	return params, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// so handlers can be registered on either.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/activity", wrapper.ListActivity)
	router.GET(baseURL+"/api/v1/activity/stream", wrapper.StreamActivity)
	router.GET(baseURL+"/api/v1/audit/:entityKind/:entityId", wrapper.ListAuditLog)
	router.GET(baseURL+"/api/v1/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/api/v1/drivers", wrapper.ListDrivers)
	router.POST(baseURL+"/api/v1/drivers", wrapper.RegisterDriver)
	router.POST(baseURL+"/api/v1/drivers/:driverId/status", wrapper.ChangeDriverStatus)
	router.GET(baseURL+"/api/v1/trips", wrapper.ListTrips)
	router.POST(baseURL+"/api/v1/trips", wrapper.CreateTrip)
	router.GET(baseURL+"/api/v1/trips/:tripId", wrapper.GetTrip)
	router.PATCH(baseURL+"/api/v1/trips/:tripId", wrapper.UpdateTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/approve", wrapper.ApproveDispatch)
	router.POST(baseURL+"/api/v1/trips/:tripId/delay", wrapper.ReportDelay)
	router.POST(baseURL+"/api/v1/trips/:tripId/documents", wrapper.AttachDocument)
	router.DELETE(baseURL+"/api/v1/trips/:tripId/documents/:documentId", wrapper.RemoveDocument)
	router.POST(baseURL+"/api/v1/trips/:tripId/reject", wrapper.RejectTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/resume", wrapper.ResumeTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/start", wrapper.StartTrip)
	router.GET(baseURL+"/api/v1/vehicles", wrapper.ListVehicles)
	router.POST(baseURL+"/api/v1/vehicles", wrapper.RegisterVehicle)
	router.POST(baseURL+"/api/v1/vehicles/:vehicleId/status", wrapper.ChangeVehicleStatus)
	router.GET(baseURL+"/api/v1/workflow", wrapper.GetWorkflow)

}
