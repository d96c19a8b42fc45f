package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to add a product line to a
// buyer's cart. Adding a line that already exists for the same
// (product, warehouse) pair merges the quantities.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	actor       accesspolicy.Actor
	buyerID     kernel.UUID
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a cart line.
// Validates IDs and that quantity is positive.
func NewAddCartItemCommand(
	actor accesspolicy.Actor,
	buyerID kernel.UUID,
	productID kernel.UUID,
	warehouseID kernel.UUID,
	quantity int,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBuyerID(buyerID),
		cmd.setProductID(productID),
		cmd.setWarehouseID(warehouseID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c AddCartItemCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// BuyerID returns the cart owner's identifier.
func (c AddCartItemCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the product being added.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseID returns the warehouse the line ships from.
func (c AddCartItemCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Quantity returns the requested quantity.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddCartItemCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
