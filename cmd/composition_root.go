package cmd

import (
	"log/slog"

	httpin "tripflow/internal/adapters/in/http"
	"tripflow/internal/adapters/out/eventbus"
	"tripflow/internal/adapters/out/memory"
	"tripflow/internal/core/application/usecases/commands"
	"tripflow/internal/core/application/usecases/queries"
	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/core/domain/services"
	"tripflow/internal/core/ports"
	"tripflow/internal/jobs"

	"github.com/jonboulle/clockwork"
)

// CompositionRoot owns the process-wide adapters and builds every handler
// over them. One root means one entity store, one lock table and one bus.
type CompositionRoot struct {
	config     Config
	clock      clockwork.Clock
	logger     *slog.Logger
	definition workflow.Definition
	policy     services.SLAPolicy

	store      *memory.Store
	locker     *memory.KeyedLocker
	bus        *eventbus.Bus
	events     ports.EventLog
	uowFactory *memory.UnitOfWorkFactory
}

// NewCompositionRoot wires the adapters. events is the audit sink chosen by
// the caller: the Postgres repository or a memory.EventLog.
func NewCompositionRoot(
	config Config,
	events ports.EventLog,
	definition workflow.Definition,
	clock clockwork.Clock,
	logger *slog.Logger,
) *CompositionRoot {
	store := memory.NewStore()
	bus := eventbus.New(logger)
	return &CompositionRoot{
		config:     config,
		clock:      clock,
		logger:     logger,
		definition: definition,
		policy:     services.NewSLAPolicy(definition),
		store:      store,
		locker:     memory.NewKeyedLocker(),
		bus:        bus,
		events:     events,
		uowFactory: memory.NewUnitOfWorkFactory(store, events, bus, logger),
	}
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	return commands.NewCreateTripCommandHandler(c.allUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateUpdateTripCommandHandler() commands.UpdateTripCommandHandler {
	return commands.NewUpdateTripCommandHandler(c.allUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateApproveDispatchCommandHandler() commands.ApproveDispatchCommandHandler {
	return commands.NewApproveDispatchCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateRejectTripCommandHandler() commands.RejectTripCommandHandler {
	return commands.NewRejectTripCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() commands.StartTripCommandHandler {
	return commands.NewStartTripCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateReportDelayCommandHandler() commands.ReportDelayCommandHandler {
	return commands.NewReportDelayCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateResumeTripCommandHandler() commands.ResumeTripCommandHandler {
	return commands.NewResumeTripCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	return commands.NewAttachDocumentCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateRemoveDocumentCommandHandler() commands.RemoveDocumentCommandHandler {
	return commands.NewRemoveDocumentCommandHandler(c.tripUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateMonitorSLACommandHandler() commands.MonitorSLACommandHandler {
	return commands.NewMonitorSLACommandHandler(
		c.tripUoWFactory(),
		c.locker,
		c.clock,
		memory.NewTripReader(c.store),
		c.policy,
		services.RandomProgressIncrement,
		c.logger.With("component", "sla_monitor"),
	)
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.fleetUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.fleetUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	return commands.NewChangeVehicleStatusCommandHandler(c.fleetUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	return commands.NewChangeDriverStatusCommandHandler(c.allUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateGetTripQueryHandler() queries.GetTripQueryHandler {
	return queries.NewGetTripQueryHandler(memory.NewTripReader(c.store), c.policy)
}

func (c *CompositionRoot) CreateListTripsQueryHandler() queries.ListTripsQueryHandler {
	return queries.NewListTripsQueryHandler(memory.NewTripReader(c.store), c.policy)
}

func (c *CompositionRoot) CreateListAuditLogQueryHandler() queries.ListAuditLogQueryHandler {
	return queries.NewListAuditLogQueryHandler(c.events)
}

func (c *CompositionRoot) CreateListActivityQueryHandler() queries.ListActivityQueryHandler {
	return queries.NewListActivityQueryHandler(c.events)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(memory.NewVehicleReader(c.store))
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(memory.NewDriverReader(c.store))
}

func (c *CompositionRoot) CreateGetWorkflowQueryHandler() queries.GetWorkflowQueryHandler {
	return queries.NewGetWorkflowQueryHandler(c.definition)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(
		memory.NewTripReader(c.store),
		memory.NewVehicleReader(c.store),
		memory.NewDriverReader(c.store),
	)
}

// CreateJobManager builds the scheduler around one shared monitor handler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	monitor := c.CreateMonitorSLACommandHandler()
	return jobs.NewJobManager(&monitor, c.config.SLAMonitorInterval, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateTrip:          c.CreateCreateTripCommandHandler(),
		UpdateTrip:          c.CreateUpdateTripCommandHandler(),
		ApproveDispatch:     c.CreateApproveDispatchCommandHandler(),
		RejectTrip:          c.CreateRejectTripCommandHandler(),
		StartTrip:           c.CreateStartTripCommandHandler(),
		ReportDelay:         c.CreateReportDelayCommandHandler(),
		ResumeTrip:          c.CreateResumeTripCommandHandler(),
		AttachDocument:      c.CreateAttachDocumentCommandHandler(),
		RemoveDocument:      c.CreateRemoveDocumentCommandHandler(),
		RegisterVehicle:     c.CreateRegisterVehicleCommandHandler(),
		RegisterDriver:      c.CreateRegisterDriverCommandHandler(),
		ChangeVehicleStatus: c.CreateChangeVehicleStatusCommandHandler(),
		ChangeDriverStatus:  c.CreateChangeDriverStatusCommandHandler(),
		GetTrip:             c.CreateGetTripQueryHandler(),
		ListTrips:           c.CreateListTripsQueryHandler(),
		ListAuditLog:        c.CreateListAuditLogQueryHandler(),
		ListActivity:        c.CreateListActivityQueryHandler(),
		ListVehicles:        c.CreateListVehiclesQueryHandler(),
		ListDrivers:         c.CreateListDriversQueryHandler(),
		GetWorkflow:         c.CreateGetWorkflowQueryHandler(),
		GetDashboard:        c.CreateGetDashboardQueryHandler(),
	}, c.bus, c.clock, c.logger)
}

// Close ends every activity stream subscription.
func (c *CompositionRoot) Close() {
	c.bus.Close()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
