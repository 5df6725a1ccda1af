package eventrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tripflow/internal/adapters/out/postgres/eventrepo"
	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var t0 = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

// EventRepositoryIntegrationTestSuite runs the event log against a real
// PostgreSQL container.
type EventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormEventRepository
}

func (suite *EventRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(eventrepo.Migrate(db))
}

func (suite *EventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE audit_entries, activities RESTART IDENTITY").Error)
	suite.repository = eventrepo.NewGormEventRepository(suite.db)
}

func (suite *EventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventRepositoryIntegrationTestSuite) entry(id kernel.UUID, action string, at time.Time) audit.Entry {
	e, err := audit.NewEntry(audit.TripEntity, id, action, "details", "Dispatcher", audit.ActionEntry, at)
	suite.Require().NoError(err)
	return e
}

func (suite *EventRepositoryIntegrationTestSuite) activity(message string, at time.Time) audit.Activity {
	a, err := audit.NewActivity(audit.TripCreated, message, at)
	suite.Require().NoError(err)
	return a
}

func (suite *EventRepositoryIntegrationTestSuite) TestAppend_ListAuditInInsertionOrder() {
	ctx := context.Background()
	tripID := kernel.NewUUID()
	other := kernel.NewUUID()

	created := suite.entry(tripID, audit.ActionTripCreated, t0)
	approved := suite.entry(tripID, audit.ActionTripApproved, t0)
	suite.Require().NoError(suite.repository.Append(ctx, []audit.Entry{created}, nil))
	suite.Require().NoError(suite.repository.Append(ctx, []audit.Entry{suite.entry(other, audit.ActionTripCreated, t0)}, nil))
	suite.Require().NoError(suite.repository.Append(ctx, []audit.Entry{approved}, nil))

	got, err := suite.repository.ListAudit(ctx, audit.TripEntity, tripID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(created.ID().String(), got[0].ID().String())
	suite.Equal(audit.ActionTripApproved, got[1].Action())
	suite.Equal(kernel.Actor("Dispatcher"), got[1].Actor())
	suite.True(t0.Equal(got[0].Timestamp()))

	none, err := suite.repository.ListAudit(ctx, audit.VehicleEntity, tripID)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *EventRepositoryIntegrationTestSuite) TestListActivity_NewestFirstWithLimit() {
	ctx := context.Background()
	for i := range 5 {
		suite.Require().NoError(suite.repository.Append(ctx, nil,
			[]audit.Activity{suite.activity(fmt.Sprintf("activity %d", i), t0.Add(time.Duration(i)*time.Second))}))
	}

	got, err := suite.repository.ListActivity(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("activity 4", got[0].Message())
	suite.Equal("activity 3", got[1].Message())

	all, err := suite.repository.ListActivity(ctx, 0)
	suite.Require().NoError(err)
	suite.Len(all, 5)
}

func (suite *EventRepositoryIntegrationTestSuite) TestAppend_IsAtomic() {
	ctx := context.Background()
	tripID := kernel.NewUUID()
	duplicate := suite.activity("first", t0)
	suite.Require().NoError(suite.repository.Append(ctx, nil, []audit.Activity{duplicate}))

	err := suite.repository.Append(ctx,
		[]audit.Entry{suite.entry(tripID, audit.ActionTripApproved, t0)},
		[]audit.Activity{duplicate},
	)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	entries, listErr := suite.repository.ListAudit(ctx, audit.TripEntity, tripID)
	suite.Require().NoError(listErr)
	suite.Empty(entries, "the entry of a failed append is rolled back with it")
}

func (suite *EventRepositoryIntegrationTestSuite) TestAppend_Empty() {
	suite.Require().NoError(suite.repository.Append(context.Background(), nil, nil))
}

func TestEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryIntegrationTestSuite))
}
