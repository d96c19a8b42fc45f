package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create an order from the
// buyer's current cart.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), buyerID, addressID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, audit)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor             accesspolicy.Actor
	orderID           kernel.UUID
	buyerID           kernel.UUID
	deliveryAddressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order from the cart.
// Validates the actor and that all identifiers are constructed.
func NewCreateOrderCommand(
	actor accesspolicy.Actor,
	orderID kernel.UUID,
	buyerID kernel.UUID,
	deliveryAddressID kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setDeliveryAddressID(deliveryAddressID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c CreateOrderCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the buyer placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// DeliveryAddressID returns the delivery address for the order.
func (c CreateOrderCommand) DeliveryAddressID() kernel.UUID {
	return c.deliveryAddressID
}

func (c *CreateOrderCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddressID(deliveryAddressID kernel.UUID) error {
	if err := deliveryAddressID.Validate(); err != nil {
		return err
	}

	c.deliveryAddressID = deliveryAddressID
	return nil
}
