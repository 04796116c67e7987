package commands

import (
	"context"
	"errors"

	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"
)

// RejectOrderCommandHandler handles the admin's turn-down decision.
// Moves a pending order to the terminal "cancelled" status with the same
// status-guarded write as approval.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// The acting profile must hold the admin role and the order must be pending.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	admin, err := uow.ProfileRepository().Get(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return errs.NewPermissionDeniedError(admin.Role().String(), "reject order")
	}

	orderRepo := uow.OrderRepository()
	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observedStatus := pendingOrder.Status()
	if err = pendingOrder.Reject(); err != nil {
		return err
	}

	err = orderRepo.UpdateWithExpectedStatus(ctx, pendingOrder, observedStatus)
	if errors.Is(err, ports.ErrConcurrentModification) {
		return errs.NewInvalidTransitionErrorWithCause("reject", observedStatus.String(), err)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
