package commands_test

import (
	"context"
	"testing"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdvanceTrackingRepository struct{ mock.Mock }

func (m *MockAdvanceTrackingRepository) Add(ctx context.Context, e *order.TrackingEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockAdvanceTrackingRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*order.TrackingEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.TrackingEvent), args.Error(1)
}

type MockAdvanceUoW struct{ mock.Mock }

func (m *MockAdvanceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdvanceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdvanceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAdvanceUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

func (m *MockAdvanceUoW) HubRepository() ports.HubRepository {
	args := m.Called()
	return args.Get(0).(ports.HubRepository)
}

func (m *MockAdvanceUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockAdvanceUoWFactory struct{ mock.Mock }

func (m *MockAdvanceUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestAdvanceOrderCommandHandler_Handle_AssignedToPickedWritesTrackingEvent(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	location, err := kernel.NewLocation(12.97, 77.59)
	require.NoError(t, err)
	cmd, _ := commands.NewAdvanceOrderCommand(orderID, driverID, &location)

	assignedOrder := newAssignedOrder(t, orderID, driverID)

	orderRepo := new(MockTransitionOrderRepository)
	profileRepo := new(MockTransitionProfileRepository)
	trackingRepo := new(MockAdvanceTrackingRepository)
	uow := new(MockAdvanceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, driverID).Return(newTestDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(assignedOrder, nil).Once(),
		orderRepo.On("UpdateWithExpectedStatus", ctx, assignedOrder, order.Assigned).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*order.TrackingEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Picked, assignedOrder.Status())

	recordedEvent := trackingRepo.Calls[0].Arguments[1].(*order.TrackingEvent)
	assert.Equal(t, orderID, recordedEvent.OrderID())
	assert.Equal(t, driverID, recordedEvent.DriverID())
	assert.Equal(t, order.PickedUpMessage, recordedEvent.StatusMessage())
	require.NotNil(t, recordedEvent.Location())

	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_LaterStepsSkipTracking(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, _ := commands.NewAdvanceOrderCommand(orderID, driverID, nil)

	pickedOrder := newAssignedOrder(t, orderID, driverID)
	require.NoError(t, pickedOrder.Advance(driverID)) // assigned -> picked

	orderRepo := new(MockTransitionOrderRepository)
	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockAdvanceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, driverID).Return(newTestDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(pickedOrder, nil).Once(),
		orderRepo.On("UpdateWithExpectedStatus", ctx, pickedOrder, order.Picked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InLaundry, pickedOrder.Status())
	uow.AssertNotCalled(t, "TrackingRepository")
}

func TestAdvanceOrderCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	assignedDriverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()
	cmd, _ := commands.NewAdvanceOrderCommand(orderID, otherDriverID, nil)

	assignedOrder := newAssignedOrder(t, orderID, assignedDriverID)

	orderRepo := new(MockTransitionOrderRepository)
	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockAdvanceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, otherDriverID).Return(newTestDriver(t, otherDriverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(assignedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.Assigned, assignedOrder.Status())
	orderRepo.AssertNotCalled(t, "UpdateWithExpectedStatus")
}

func TestAdvanceOrderCommandHandler_Handle_DeliveredIsTerminal(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, _ := commands.NewAdvanceOrderCommand(orderID, driverID, nil)

	deliveredOrder := newAssignedOrder(t, orderID, driverID)
	for range 5 { // assigned -> picked -> in_laundry -> ready -> out_for_delivery -> delivered
		require.NoError(t, deliveredOrder.Advance(driverID))
	}
	require.Equal(t, order.Delivered, deliveredOrder.Status())

	orderRepo := new(MockTransitionOrderRepository)
	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockAdvanceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, driverID).Return(newTestDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(deliveredOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAdvanceOrderCommandHandler_Handle_DoubleSubmitAppliesOnce(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, _ := commands.NewAdvanceOrderCommand(orderID, driverID, nil)

	// The second submit reads the already-moved row under the old status
	// expectation; the guarded write rejects it.
	assignedOrder := newAssignedOrder(t, orderID, driverID)

	orderRepo := new(MockTransitionOrderRepository)
	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockAdvanceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Get", ctx, driverID).Return(newTestDriver(t, driverID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(assignedOrder, nil).Once(),
		orderRepo.On("UpdateWithExpectedStatus", ctx, assignedOrder, order.Assigned).
			Return(ports.ErrConcurrentModification).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit")
}
