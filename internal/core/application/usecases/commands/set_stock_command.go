package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSetStockCommandIsNotConstructed = errors.New(
	"SetStockCommand must be created via NewSetStockCommand constructor",
)

// SetStockCommand represents a request to set the on-hand quantity for a
// (warehouse, product) pair, creating the record when absent. Reserved
// quantity is never touched by this operation.
type SetStockCommand struct { //nolint:recvcheck //using for validation
	actor       accesspolicy.Actor
	warehouseID kernel.UUID
	productID   kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewSetStockCommand creates a command to set stock levels.
func NewSetStockCommand(
	actor accesspolicy.Actor,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (SetStockCommand, error) {
	cmd := SetStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setWarehouseID(warehouseID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return SetStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStockCommand) Validate() error {
	return c.guard.Validate(ErrSetStockCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c SetStockCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// WarehouseID returns the warehouse being stocked.
func (c SetStockCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ProductID returns the stocked product.
func (c SetStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new on-hand quantity.
func (c SetStockCommand) Quantity() int {
	return c.quantity
}

func (c *SetStockCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetStockCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *SetStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetStockCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
