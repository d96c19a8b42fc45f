package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to remove every line from a
// buyer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	actor   accesspolicy.Actor
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear a buyer's cart.
func NewClearCartCommand(actor accesspolicy.Actor, buyerID kernel.UUID) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBuyerID(buyerID),
	); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c ClearCartCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// BuyerID returns the cart owner's identifier.
func (c ClearCartCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *ClearCartCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ClearCartCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}
