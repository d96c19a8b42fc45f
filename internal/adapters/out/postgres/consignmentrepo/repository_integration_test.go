package consignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/consignmentrepo"
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConsignmentRepositoryIntegrationTestSuite exercises consignment persistence
// against a real PostgreSQL database, in particular the append-only behavior
// of the tracking trail.
type ConsignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   noopTracker
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *ConsignmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&consignmentrepo.ConsignmentDTO{}, &consignmentrepo.EventDTO{})
	suite.Require().NoError(err)
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE consignments, consignment_events").Error
	suite.Require().NoError(err)
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) repo() *consignmentrepo.GormConsignmentRepository {
	return consignmentrepo.NewGormConsignmentRepository(suite.db, suite.tracker)
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) newConsignment(number string) *consignment.Consignment {
	aggregate, err := consignment.NewConsignment(kernel.NewUUID(), number,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, time.Now().UTC().Truncate(time.Millisecond))
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestAddGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newConsignment("CON2509010001")

	suite.Require().NoError(suite.repo().Add(ctx, aggregate))

	stored, err := suite.repo().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("CON2509010001", stored.ConsignmentNumber())
	suite.Equal(consignment.StatusPending, stored.Status())
	suite.Require().Len(stored.Events(), 1, "creation records the initial event")
	suite.Equal(consignment.StatusPending, stored.Events()[0].Status())
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestUpdate_AppendsEventsOnly() {
	ctx := context.Background()
	aggregate := suite.newConsignment("CON2509010002")
	suite.Require().NoError(suite.repo().Add(ctx, aggregate))

	driverID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(aggregate.AssignDriver(driverID, now))
	suite.Require().NoError(suite.repo().Update(ctx, aggregate))

	suite.Require().NoError(aggregate.TransitionTo(consignment.StatusPickedUp,
		"left the dock", nil, now.Add(time.Minute)))
	suite.Require().NoError(suite.repo().Update(ctx, aggregate))

	stored, err := suite.repo().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(consignment.StatusPickedUp, stored.Status())
	suite.Require().Len(stored.Events(), 3)
	suite.Equal(consignment.StatusPending, stored.Events()[0].Status())
	suite.Equal(consignment.StatusAssigned, stored.Events()[1].Status())
	suite.Equal(consignment.StatusPickedUp, stored.Events()[2].Status())
	suite.Equal("left the dock", stored.Events()[2].Notes())
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestUpdate_StoredEventsAreImmutable() {
	ctx := context.Background()
	aggregate := suite.newConsignment("CON2509010003")
	suite.Require().NoError(suite.repo().Add(ctx, aggregate))

	firstOccurredAt := aggregate.Events()[0].OccurredAt()

	// A second update re-submits the whole trail; the stored rows must
	// come back unchanged.
	suite.Require().NoError(suite.repo().Update(ctx, aggregate))

	stored, err := suite.repo().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Events(), 1)
	suite.WithinDuration(firstOccurredAt, stored.Events()[0].OccurredAt(), time.Millisecond)
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestGetActiveByDriver_SkipsTerminal() {
	ctx := context.Background()
	driverID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	active := suite.newConsignment("CON2509010004")
	suite.Require().NoError(active.AssignDriver(driverID, now))
	suite.Require().NoError(suite.repo().Add(ctx, active))

	cancelled := suite.newConsignment("CON2509010005")
	suite.Require().NoError(cancelled.AssignDriver(driverID, now))
	suite.Require().NoError(cancelled.TransitionTo(consignment.StatusCancelled, "", nil, now))
	suite.Require().NoError(suite.repo().Add(ctx, cancelled))

	found, err := suite.repo().GetActiveByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].ID().IsEqual(active.ID()))
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestExistsForOrderAndWarehouse() {
	ctx := context.Background()
	aggregate := suite.newConsignment("CON2509010006")
	suite.Require().NoError(suite.repo().Add(ctx, aggregate))

	exists, err := suite.repo().ExistsForOrderAndWarehouse(ctx, aggregate.OrderID(), aggregate.WarehouseID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo().ExistsForOrderAndWarehouse(ctx, aggregate.OrderID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists, "other warehouses of the same order stay open")
}

func (suite *ConsignmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo().Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestConsignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConsignmentRepositoryIntegrationTestSuite))
}
