package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
	ErrGarmentCountIsInvalid   = errors.New("garment count must be greater than 0")
)

// CreateOrderCommand represents a customer's request to place a laundry order.
// Encapsulates the service choice, garment count, and pickup details. The
// price is not part of the command; it is derived from the service type when
// the order aggregate is created.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, hubID,
//	    order.WashFold, 5, "12 MG Road", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting admin review", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	hubID               kernel.UUID
	serviceType         order.ServiceType
	garmentCount        int
	pickupAddress       string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new laundry order.
// Validates that all identifiers are valid, the service type is known, the
// garment count is positive, and the pickup address is not empty.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	hubID kernel.UUID,
	serviceType order.ServiceType,
	garmentCount int,
	pickupAddress string,
	specialInstructions string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setHubID(hubID),
		orderCommand.setServiceType(serviceType),
		orderCommand.setGarmentCount(garmentCount),
		orderCommand.setPickupAddress(pickupAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// HubID returns the chosen processing facility's identifier.
func (c CreateOrderCommand) HubID() kernel.UUID {
	return c.hubID
}

// ServiceType returns the requested laundry service.
func (c CreateOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

// GarmentCount returns the number of garments in the pickup.
func (c CreateOrderCommand) GarmentCount() int {
	return c.garmentCount
}

// PickupAddress returns the customer's pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// SpecialInstructions returns the optional free-text instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}

	c.hubID = hubID
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setGarmentCount(garmentCount int) error {
	if garmentCount <= 0 {
		return ErrGarmentCountIsInvalid
	}

	c.garmentCount = garmentCount
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}
