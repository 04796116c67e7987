package commands

import (
	"context"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"
)

// AdvanceOrderCommandHandler moves an order one step along the delivery chain.
// The write is guarded on the status the handler observed, so a double-submit
// of the same step applies exactly once: the second write sees a row that has
// already moved and fails as an invalid transition.
//
// Reaching "picked" also appends a tracking event recording the pickup, in
// the same transaction as the status change.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for advance operations.
// Requires a UoWFactory because advancing writes orders and tracking events.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// The acting profile must hold the driver role and be the driver assigned to
// the order; advancing someone else's order is a permission error even when
// the transition itself would be legal.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driver, err := uow.ProfileRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsDriver() {
		return errs.NewPermissionDeniedError(driver.Role().String(), "advance order")
	}

	orderRepo := uow.OrderRepository()
	activeOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observedStatus := activeOrder.Status()
	if err = activeOrder.Advance(cmd.DriverID()); err != nil {
		return err
	}

	err = orderRepo.UpdateWithExpectedStatus(ctx, activeOrder, observedStatus)
	if errors.Is(err, ports.ErrConcurrentModification) {
		return errs.NewInvalidTransitionErrorWithCause("advance", observedStatus.String(), err)
	}
	if err != nil {
		return err
	}

	if activeOrder.Status() == order.Picked {
		pickupEvent, eventErr := order.NewTrackingEvent(
			kernel.NewUUID(),
			activeOrder.ID(),
			cmd.DriverID(),
			order.PickedUpMessage,
			cmd.Location(),
		)
		if eventErr != nil {
			return eventErr
		}

		if err = uow.TrackingRepository().Add(ctx, pickupEvent); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
