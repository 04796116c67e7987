package commands

import (
	"context"

	"laundromart/internal/pkg/errs"
)

// ClaimOrderCommandHandler handles a driver taking an approved order.
//
// The claim is decided by the repository's single conditional write, not by
// what this handler read: the in-memory checks here only classify the failure
// for claims that were already doomed when the order was loaded. A claim can
// fail two ways:
//
//   - ClaimConflictError: the order was approved but another driver attached
//     first, either before this handler read it or between the read and the
//     write. The right client response is refresh-and-retry elsewhere.
//   - InvalidTransitionError: the order was never claimable at all (still
//     pending, or already terminal).
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// The acting profile must hold the driver role. Of N concurrent claims on the
// same order exactly one returns nil; every other returns a ClaimConflictError.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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
		return errs.NewPermissionDeniedError(driver.Role().String(), "claim order")
	}

	orderRepo := uow.OrderRepository()
	claimedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Terminal orders were never claimable, so they are a broken transition
	// rather than a lost race. Only a live order with a driver already
	// attached counts as a conflict.
	if status := claimedOrder.Status(); status.IsTerminal() {
		return errs.NewInvalidTransitionError("claim", status.String())
	}
	if claimedOrder.Driver() != nil {
		return errs.NewClaimConflictError(claimedOrder.ID().String(), cmd.DriverID().String())
	}

	if err = claimedOrder.Assign(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
