package orderrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"laundromart/internal/adapters/out/postgres/orderrepo"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.HubID(), retrieved.HubID())
	suite.Equal(order.WashFold, retrieved.ServiceType())
	suite.Equal(5, retrieved.GarmentCount())
	suite.Equal("12 MG Road", retrieved.PickupAddress())
	suite.Equal("ring twice", retrieved.SpecialInstructions())
	suite.Equal(250, retrieved.TotalAmount())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Driver())
	suite.Nil(retrieved.AdminApprovedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithExpectedStatus_FreshStatus_Succeeds() {
	ctx := context.Background()

	pendingOrder := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", pendingOrder.ID(), pendingOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	adminID := kernel.NewUUID()
	observedStatus := pendingOrder.Status()
	suite.Require().NoError(pendingOrder.Approve(adminID))

	err := suite.repository.UpdateWithExpectedStatus(ctx, pendingOrder, observedStatus)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrieved.Status())
	suite.Require().NotNil(retrieved.AdminApprovedBy())
	suite.Equal(adminID, *retrieved.AdminApprovedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithExpectedStatus_StaleStatus_RefusesWrite() {
	ctx := context.Background()

	pendingOrder := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", pendingOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	// A second actor decides first.
	winner, err := suite.repository.Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.Approve(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.UpdateWithExpectedStatus(ctx, winner, order.Pending))

	// The stale actor still believes the order is pending.
	suite.Require().NoError(pendingOrder.Reject())
	err = suite.repository.UpdateWithExpectedStatus(ctx, pendingOrder, order.Pending)
	suite.Require().ErrorIs(err, ports.ErrConcurrentModification)

	// The first decision stands.
	retrieved, err := suite.repository.Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_ApprovedUnclaimedOrder_Succeeds() {
	ctx := context.Background()

	approvedOrder := suite.createApprovedOrder()
	suite.tracker.On("TrackAggregate", approvedOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, approvedOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(approvedOrder.Assign(driverID))

	err := suite.repository.Claim(ctx, approvedOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, approvedOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(driverID, *retrieved.Driver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimedOrder_ReturnsClaimConflict() {
	ctx := context.Background()

	approvedOrder := suite.createApprovedOrder()
	suite.tracker.On("TrackAggregate", approvedOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, approvedOrder))

	firstDriver := kernel.NewUUID()
	firstClaim := suite.restoreOrderCopy(approvedOrder)
	suite.Require().NoError(firstClaim.Assign(firstDriver))
	suite.Require().NoError(suite.repository.Claim(ctx, firstClaim))

	secondDriver := kernel.NewUUID()
	secondClaim := suite.restoreOrderCopy(approvedOrder)
	suite.Require().NoError(secondClaim.Assign(secondDriver))

	err := suite.repository.Claim(ctx, secondClaim)
	suite.Require().Error(err)

	var conflictErr *errs.ClaimConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Equal(approvedOrder.ID().String(), conflictErr.OrderID)
	suite.Equal(secondDriver.String(), conflictErr.DriverID)

	// The winning driver is undisturbed.
	retrieved, err := suite.repository.Get(ctx, approvedOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(firstDriver, *retrieved.Driver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_ConcurrentDrivers_ExactlyOneWins() {
	ctx := context.Background()
	const driverCount = 10

	approvedOrder := suite.createApprovedOrder()
	suite.tracker.On("TrackAggregate", approvedOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, approvedOrder))

	// Every driver read the order in Approved status and races to claim it.
	results := make(chan error, driverCount)
	var start sync.WaitGroup
	start.Add(1)

	for range driverCount {
		claim := suite.restoreOrderCopy(approvedOrder)
		suite.Require().NoError(claim.Assign(kernel.NewUUID()))

		go func(claim *order.Order) {
			start.Wait()
			results <- suite.repository.Claim(ctx, claim)
		}(claim)
	}
	start.Done()

	wins, conflicts := 0, 0
	for range driverCount {
		err := <-results
		switch {
		case err == nil:
			wins++
		case errors.Is(err, errs.ErrClaimConflict):
			conflicts++
		default:
			suite.Failf("unexpected claim error", "%v", err)
		}
	}

	suite.Equal(1, wins, "exactly one driver must win the claim race")
	suite.Equal(driverCount-1, conflicts)

	// The stored row holds exactly one driver in Assigned status.
	retrieved, err := suite.repository.Get(ctx, approvedOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.NotNil(retrieved.Driver())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_OrderWithoutDriver_ReturnsValidationError() {
	ctx := context.Background()

	approvedOrder := suite.createApprovedOrder()

	err := suite.repository.Claim(ctx, approvedOrder)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

// createPendingOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createPendingOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.WashFold, 5, "12 MG Road", "ring twice",
	)
	suite.Require().NoError(err)
	return testOrder
}

// createApprovedOrder creates a test order already approved by an admin.
func (suite *OrderRepositoryIntegrationTestSuite) createApprovedOrder() *order.Order {
	testOrder := suite.createPendingOrder()
	suite.Require().NoError(testOrder.Approve(kernel.NewUUID()))
	return testOrder
}

// restoreOrderCopy rebuilds an independent aggregate from another order's
// state, simulating a second actor that read the same row.
func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderCopy(src *order.Order) *order.Order {
	copied, err := order.RestoreOrder(
		src.ID(), src.CustomerID(), src.HubID(), src.Driver(),
		src.ServiceType(), src.GarmentCount(), src.PickupAddress(), src.SpecialInstructions(),
		src.TotalAmount(), src.Status(), src.AdminApprovedAt(), src.AdminApprovedBy(),
		src.CreatedAt(), src.UpdatedAt(),
	)
	suite.Require().NoError(err)
	return copied
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
