package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to change the quantity of an
// existing cart line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	actor    accesspolicy.Actor
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart line quantity.
func NewUpdateCartItemCommand(
	actor accesspolicy.Actor,
	itemID kernel.UUID,
	quantity int,
) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c UpdateCartItemCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// ItemID returns the cart line identifier.
func (c UpdateCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
