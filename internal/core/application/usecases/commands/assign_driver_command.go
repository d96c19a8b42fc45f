package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign or reassign the
// driver of a consignment. Drivers themselves may never issue this, not
// even for their own consignments.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor         accesspolicy.Actor
	consignmentID kernel.UUID
	driverID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
func NewAssignDriverCommand(
	actor accesspolicy.Actor,
	consignmentID kernel.UUID,
	driverID kernel.UUID,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsignmentID(consignmentID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c AssignDriverCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// ConsignmentID returns the consignment being assigned.
func (c AssignDriverCommand) ConsignmentID() kernel.UUID {
	return c.consignmentID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignDriverCommand) setConsignmentID(consignmentID kernel.UUID) error {
	if err := consignmentID.Validate(); err != nil {
		return err
	}

	c.consignmentID = consignmentID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
