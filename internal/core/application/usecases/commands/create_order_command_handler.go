package commands

import (
	"context"
	"fmt"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the acting profile is a customer, checks that the chosen hub offers
// the requested service, and creates the order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, hubID,
//	    order.DryCleaning, 3, "456 Oak Avenue", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and awaiting the admin's decision
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory because placement touches profiles, hubs, and orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The acting profile must exist and hold the customer role; the hub must exist
// and offer the requested service type. The new order starts in "pending"
// status with its total amount fixed from the service unit price.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	customer, err := uow.ProfileRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !customer.IsCustomer() {
		return errs.NewPermissionDeniedError(customer.Role().String(), "create order")
	}

	laundryHub, err := uow.HubRepository().Get(ctx, cmd.HubID())
	if err != nil {
		return err
	}
	// A hub that does not offer the service is as good as no hub at all for
	// this order.
	if !laundryHub.Offers(cmd.ServiceType()) {
		return errs.NewObjectNotFoundErrorWithCause("hubId", cmd.HubID(),
			fmt.Errorf("hub %s does not offer %s", laundryHub.Name(), cmd.ServiceType()))
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.HubID(),
		cmd.ServiceType(),
		cmd.GarmentCount(),
		cmd.PickupAddress(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
