package commands

import (
	"context"
	"fmt"

	"laundromart/internal/pkg/errs"
)

// AssignDriverCommandHandler handles the admin's manual driver assignment.
// Reuses the claim's conditional write, so an assignment races fairly against
// self-service claims for the same order.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for manual assignment operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// The acting profile must hold the admin role, and the target profile must
// hold the driver role. The order must be approved with no driver attached.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	profileRepo := uow.ProfileRepository()
	admin, err := profileRepo.Get(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return errs.NewPermissionDeniedError(admin.Role().String(), "assign driver")
	}

	driver, err := profileRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsDriver() {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("profile %s is a %s, not a driver", driver.ID(), driver.Role()))
	}

	orderRepo := uow.OrderRepository()
	approvedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if status := approvedOrder.Status(); status.IsTerminal() {
		return errs.NewInvalidTransitionError("claim", status.String())
	}
	if approvedOrder.Driver() != nil {
		return errs.NewClaimConflictError(approvedOrder.ID().String(), cmd.DriverID().String())
	}

	if err = approvedOrder.Assign(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, approvedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
