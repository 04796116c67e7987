package postgres_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "laundromart/internal/adapters/out/postgres"
	"laundromart/internal/adapters/out/postgres/changefeed"
	"laundromart/internal/adapters/out/postgres/hubrepo"
	"laundromart/internal/adapters/out/postgres/orderrepo"
	"laundromart/internal/adapters/out/postgres/profilerepo"
	"laundromart/internal/adapters/out/postgres/trackingrepo"
	"laundromart/internal/core/domain/model/hub"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
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
	suite.dsn = dsn

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&profilerepo.ProfileDTO{},
		&hubrepo.HubDTO{},
		&trackingrepo.TrackingEventDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, profiles, laundry_hubs, order_tracking").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProfileRepository())
	suite.NotNil(uow1.HubRepository())
	suite.NotNil(uow1.TrackingRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderCreationWorkflow verifies the full creation path:
// customer and hub exist, the order is created against them, and everything
// persists atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderCreationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer()
	testHub := createTestHub()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProfileRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = uow.HubRepository().Add(ctx, testHub)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), testCustomer.ID(), testHub.ID(),
		order.WashFold, 5, "12 MG Road", "",
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction before commit.
	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible from a fresh unit of work after commit.
	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.ID(), retrieved.CustomerID())
	suite.Equal(testHub.ID(), retrieved.HubID())
	suite.Equal(order.Pending, retrieved.Status())
}

// TestUnitOfWork_AdvanceWorkflow verifies the pickup transition writes both
// the order row and the tracking event in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AdvanceWorkflow() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	testOrder := suite.persistAssignedOrder(ctx, driverID)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	activeOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	observedStatus := activeOrder.Status()
	err = activeOrder.Advance(driverID)
	suite.Require().NoError(err)
	suite.Equal(order.Picked, activeOrder.Status())

	err = uow.OrderRepository().UpdateWithExpectedStatus(ctx, activeOrder, observedStatus)
	suite.Require().NoError(err)

	location, err := kernel.NewLocation(12.97, 77.59)
	suite.Require().NoError(err)
	event, err := order.NewTrackingEvent(
		kernel.NewUUID(), activeOrder.ID(), driverID, order.PickedUpMessage, &location,
	)
	suite.Require().NoError(err)
	err = uow.TrackingRepository().Add(ctx, event)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Picked, retrieved.Status())

	events, err := newUow.TrackingRepository().GetAllForOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(order.PickedUpMessage, events[0].StatusMessage())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer()
	testOrder := createTestOrder(testCustomer.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProfileRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Both visible within the transaction.
	_, err = uow.ProfileRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ProfileRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Profile should not exist after rollback")
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(kernel.NewUUID())
	order2 := createTestOrder(kernel.NewUUID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes.
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

// TestUnitOfWork_CommitPublishesChangeNotification verifies the change feed
// receives one event per committed order change and nothing for rollbacks.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesChangeNotification() {
	ctx := context.Background()

	feed, err := changefeed.NewPqChangeFeed(
		suite.dsn, postgres_adapter.OrderChangesChannel, slog.Default(),
	)
	suite.Require().NoError(err)
	defer func() {
		suite.Require().NoError(feed.Close())
	}()

	events, cancel := feed.Subscribe()
	defer cancel()

	// A rolled-back transaction announces nothing.
	rolledBack := createTestOrder(kernel.NewUUID())
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, rolledBack))
	suite.Require().NoError(uow.Rollback(ctx))

	// A committed transaction announces the change.
	committed := createTestOrder(kernel.NewUUID())
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, committed))
	suite.Require().NoError(uow.Commit(ctx))

	select {
	case change := <-events:
		suite.Equal(committed.ID().String(), change.OrderID)
		suite.Equal(order.Pending.String(), change.Status)
	case <-time.After(10 * time.Second):
		suite.Fail("expected a change notification after commit")
	}

	// No further events are pending; the rollback never surfaced.
	select {
	case change := <-events:
		suite.Failf("unexpected change notification", "%+v", change)
	case <-time.After(500 * time.Millisecond):
	}
}

// persistAssignedOrder stores an order already claimed by the given driver.
func (suite *UnitOfWorkIntegrationTestSuite) persistAssignedOrder(
	ctx context.Context, driverID kernel.UUID,
) *order.Order {
	testOrder := createTestOrder(kernel.NewUUID())
	suite.Require().NoError(testOrder.Approve(kernel.NewUUID()))
	suite.Require().NoError(testOrder.Assign(driverID))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	return testOrder
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(customerID kernel.UUID) *order.Order {
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		order.WashFold, 5, "12 MG Road", "",
	)
	return testOrder
}

// createTestCustomer creates a valid customer profile for testing purposes.
func createTestCustomer() *profile.Profile {
	email := fmt.Sprintf("customer-%s@example.com", kernel.NewUUID().String())
	testProfile, _ := profile.NewProfile(
		kernel.NewUUID(), profile.Customer, "Test Customer", email, "+91 98765 43210",
	)
	return testProfile
}

// createTestHub creates a valid laundry hub for testing purposes.
func createTestHub() *hub.Hub {
	location, _ := kernel.NewLocation(12.97, 77.59)
	testHub, _ := hub.NewHub(
		kernel.NewUUID(), "Koramangala Hub", "80 Feet Road", "+91 80 4111 0000",
		location, []order.ServiceType{order.WashFold, order.DryCleaning},
	)
	return testHub
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
