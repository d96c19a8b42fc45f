package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateConsignmentCommandIsNotConstructed = errors.New(
	"CreateConsignmentCommand must be created via NewCreateConsignmentCommand constructor",
)

// CreateConsignmentCommand represents a request to create a delivery
// consignment covering one order's items from one warehouse. The pickup
// address is the warehouse's registered address, resolved by the caller;
// the delivery address is copied from the parent order.
type CreateConsignmentCommand struct { //nolint:recvcheck //using for validation
	actor               accesspolicy.Actor
	consignmentID       kernel.UUID
	orderID             kernel.UUID
	warehouseID         kernel.UUID
	pickupAddressID     kernel.UUID
	driverID            *kernel.UUID
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewCreateConsignmentCommand creates a command to open a consignment.
// driverID and estimatedDeliveryAt are optional; assigning a driver at
// creation moves the consignment straight to ASSIGNED.
func NewCreateConsignmentCommand(
	actor accesspolicy.Actor,
	consignmentID kernel.UUID,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	pickupAddressID kernel.UUID,
	driverID *kernel.UUID,
	estimatedDeliveryAt *time.Time,
) (CreateConsignmentCommand, error) {
	cmd := CreateConsignmentCommand{
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsignmentID(consignmentID),
		cmd.setOrderID(orderID),
		cmd.setWarehouseID(warehouseID),
		cmd.setPickupAddressID(pickupAddressID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateConsignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateConsignmentCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c CreateConsignmentCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// ConsignmentID returns the identifier the consignment will be created under.
func (c CreateConsignmentCommand) ConsignmentID() kernel.UUID {
	return c.consignmentID
}

// OrderID returns the parent order.
func (c CreateConsignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WarehouseID returns the warehouse the consignment ships from.
func (c CreateConsignmentCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// PickupAddressID returns the warehouse's registered pickup address.
func (c CreateConsignmentCommand) PickupAddressID() kernel.UUID {
	return c.pickupAddressID
}

// DriverID returns the driver to assign at creation, nil when none.
func (c CreateConsignmentCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// EstimatedDeliveryAt returns the optional delivery estimate.
func (c CreateConsignmentCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

func (c *CreateConsignmentCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateConsignmentCommand) setConsignmentID(consignmentID kernel.UUID) error {
	if err := consignmentID.Validate(); err != nil {
		return err
	}

	c.consignmentID = consignmentID
	return nil
}

func (c *CreateConsignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateConsignmentCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateConsignmentCommand) setPickupAddressID(pickupAddressID kernel.UUID) error {
	if err := pickupAddressID.Validate(); err != nil {
		return err
	}

	c.pickupAddressID = pickupAddressID
	return nil
}

func (c *CreateConsignmentCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
