// Package http exposes the engine over REST and server-sent events. Handlers
// translate requests into commands and queries and map engine errors to
// status codes; no workflow logic lives here.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/generated/servers"
	"tripflow/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// AnonymousActor is recorded when a request carries no X-User-Role header.
const AnonymousActor kernel.Actor = "Anonymous"

// ActivitySubscriber is the part of the event bus the stream endpoint needs.
type ActivitySubscriber interface {
	Subscribe(buffer int) (<-chan audit.Event, func())
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateTrip          commands.CreateTripCommandHandler
	UpdateTrip          commands.UpdateTripCommandHandler
	ApproveDispatch     commands.ApproveDispatchCommandHandler
	RejectTrip          commands.RejectTripCommandHandler
	StartTrip           commands.StartTripCommandHandler
	ReportDelay         commands.ReportDelayCommandHandler
	ResumeTrip          commands.ResumeTripCommandHandler
	AttachDocument      commands.AttachDocumentCommandHandler
	RemoveDocument      commands.RemoveDocumentCommandHandler
	RegisterVehicle     commands.RegisterVehicleCommandHandler
	RegisterDriver      commands.RegisterDriverCommandHandler
	ChangeVehicleStatus commands.ChangeVehicleStatusCommandHandler
	ChangeDriverStatus  commands.ChangeDriverStatusCommandHandler

	GetTrip      queries.GetTripQueryHandler
	ListTrips    queries.ListTripsQueryHandler
	ListAuditLog queries.ListAuditLogQueryHandler
	ListActivity queries.ListActivityQueryHandler
	ListVehicles queries.ListVehiclesQueryHandler
	ListDrivers  queries.ListDriversQueryHandler
	GetWorkflow  queries.GetWorkflowQueryHandler
	GetDashboard queries.GetDashboardQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h          Handlers
	subscriber ActivitySubscriber
	clock      clockwork.Clock
	logger     *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	handlers Handlers,
	subscriber ActivitySubscriber,
	clock clockwork.Clock,
	logger *slog.Logger,
) *Server {
	return &Server{
		h:          handlers,
		subscriber: subscriber,
		clock:      clock,
		logger:     logger.With("component", "http"),
	}
}

// Register mounts the API routes and the health probe on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	servers.RegisterHandlers(e, s)
}

// statusOf maps engine errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrStateIsInconsistent):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func actorOf(params servers.ActorParams) kernel.Actor {
	if params.XUserRole == nil || strings.TrimSpace(*params.XUserRole) == "" {
		return AnonymousActor
	}
	return kernel.Actor(strings.TrimSpace(*params.XUserRole))
}

func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func fromOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
