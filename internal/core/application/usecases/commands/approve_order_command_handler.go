package commands

import (
	"context"
	"errors"

	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"
)

// ApproveOrderCommandHandler handles the admin's accept decision.
// Moves a pending order to "approved", stamping who approved it and when.
// The write is guarded on the status the handler observed, so two admins
// deciding on the same order cannot both succeed.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// The acting profile must hold the admin role and the order must be pending.
// A lost write race surfaces as an InvalidTransitionError because from the
// caller's point of view the order is no longer in the state they decided on.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
		return errs.NewPermissionDeniedError(admin.Role().String(), "approve order")
	}

	orderRepo := uow.OrderRepository()
	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observedStatus := pendingOrder.Status()
	if err = pendingOrder.Approve(cmd.AdminID()); err != nil {
		return err
	}

	err = orderRepo.UpdateWithExpectedStatus(ctx, pendingOrder, observedStatus)
	if errors.Is(err, ports.ErrConcurrentModification) {
		return errs.NewInvalidTransitionErrorWithCause("approve", observedStatus.String(), err)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
