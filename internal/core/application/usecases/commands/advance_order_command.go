package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand moves an order one step along the delivery chain:
// assigned, picked, in_laundry, ready, out_for_delivery, delivered. Only the
// assigned driver may issue it. The command names no target status; the next
// step is always implied by the current one.
//
// The optional location is the driver's position at the moment of the call,
// recorded with the tracking event written at pickup.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	location *kernel.Location

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order one step.
// location may be nil when the driver's position is unknown.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	location *kernel.Location,
) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
		command.setLocation(location),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the acting driver's identifier.
func (c AdvanceOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the driver's position snapshot, or nil if none was given.
func (c AdvanceOrderCommand) Location() *kernel.Location {
	return c.location
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AdvanceOrderCommand) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
