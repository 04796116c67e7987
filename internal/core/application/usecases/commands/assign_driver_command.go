package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents an admin attaching a specific driver to an
// approved order, bypassing the self-service claim pool. The assignment obeys
// the same single-winner rule as a claim: if a driver got there first, the
// admin's assignment loses.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	adminID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command for an admin to assign a driver.
// Validates that all identifiers are valid.
func NewAssignDriverCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	adminID kernel.UUID,
) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
		command.setAdminID(adminID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver being attached.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// AdminID returns the acting admin's identifier.
func (c AssignDriverCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
