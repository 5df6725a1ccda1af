package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tripflow/internal/adapters/out/memory"
	postgres_adapter "tripflow/internal/adapters/out/postgres"
	"tripflow/internal/adapters/out/postgres/eventrepo"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/domain/model/trip"
	"tripflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var t0 = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite runs the in-memory unit of work on top of the
// durable PostgreSQL event log.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *memory.Store
	events    *eventrepo.GormEventRepository
	factory   *memory.UnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and opens it through the adapter, which also
// migrates the event tables.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.OpenDSN(ctx, dsn, slog.New(slog.DiscardHandler))
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE audit_entries, activities").Error)
	suite.store = memory.NewStore()
	suite.events = eventrepo.NewGormEventRepository(suite.db)
	suite.factory = memory.NewUnitOfWorkFactory(suite.store, suite.events, nil, slog.New(slog.DiscardHandler))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTrip() *trip.Trip {
	t, err := trip.NewTrip(kernel.NewUUID(), trip.Details{
		Name:          "Morning run",
		Origin:        "Depot A",
		Destination:   "Store 12",
		ScheduledTime: t0.Add(time.Hour),
	}, t0)
	suite.Require().NoError(err)
	return t
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsJournal() {
	ctx := context.Background()
	t := suite.newTrip()
	entry, err := audit.NewEntry(audit.TripEntity, t.ID(), audit.ActionTripCreated, "created", "Dispatcher", audit.ActionEntry, t0)
	suite.Require().NoError(err)
	activity, err := audit.NewActivity(audit.TripCreated, "New trip created.", t0)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TripRepository().Add(ctx, t))
	uow.Journal().RecordAudit(entry)
	uow.Journal().RecordActivity(activity)
	suite.Require().NoError(uow.Commit(ctx))

	entries, err := suite.events.ListAudit(ctx, audit.TripEntity, t.ID())
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	activities, err := suite.events.ListActivity(ctx, 0)
	suite.Require().NoError(err)
	suite.Len(activities, 1)

	_, err = memory.NewTripReader(suite.store).Get(ctx, t.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_FailedAppendRollsBackState() {
	ctx := context.Background()
	t := suite.newTrip()
	activity, err := audit.NewActivity(audit.TripCreated, "New trip created.", t0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.events.Append(ctx, nil, []audit.Activity{activity}))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TripRepository().Add(ctx, t))
	uow.Journal().RecordActivity(activity)
	err = uow.Commit(ctx)

	suite.Require().ErrorIs(err, errs.ErrStateIsInconsistent)
	var inconsistent *errs.InconsistentStateError
	suite.Require().True(errors.As(err, &inconsistent))
	suite.True(inconsistent.RolledBack)

	_, err = memory.NewTripReader(suite.store).Get(ctx, t.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettings_DSN() {
	dsn := postgres_adapter.Settings{Host: "db", Port: "5432", User: "u", Password: "p", Name: "trips"}.DSN()
	suite.Equal("host=db port=5432 user=u password=p dbname=trips sslmode=disable", dsn)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
