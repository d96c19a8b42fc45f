package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a request to record a payment
// state change reported by the payments collaborator. Payment status is
// independent of order status and never drives transitions here.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	actor   accesspolicy.Actor
	orderID kernel.UUID
	target  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to record a payment state.
func NewUpdatePaymentStatusCommand(
	actor accesspolicy.Actor,
	orderID kernel.UUID,
	target order.PaymentStatus,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c UpdatePaymentStatusCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// OrderID returns the order whose payment state changed.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the reported payment status.
func (c UpdatePaymentStatusCommand) Target() order.PaymentStatus {
	return c.target
}

func (c *UpdatePaymentStatusCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdatePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentStatusCommand) setTarget(target order.PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
