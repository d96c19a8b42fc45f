package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a
// new status. Inventory side effects of the transition (commit on
// CONFIRMED, release/restock on CANCELLED) happen in the same transaction.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   accesspolicy.Actor
	orderID kernel.UUID
	target  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// An optional note is appended to the order's note trail.
func NewUpdateOrderStatusCommand(
	actor accesspolicy.Actor,
	orderID kernel.UUID,
	target order.Status,
	note string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c UpdateOrderStatusCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// OrderID returns the order being transitioned.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Note returns the optional note to append, empty when none.
func (c UpdateOrderStatusCommand) Note() string {
	return c.note
}

func (c *UpdateOrderStatusCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
