package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateConsignmentCommandIsNotConstructed = errors.New(
	"UpdateConsignmentCommand must be created via NewUpdateConsignmentCommand constructor",
)

// UpdateConsignmentCommand represents a request to progress a consignment:
// a status transition, a note, an actual delivery date, a delivery
// estimate, or any combination. Target StatusUnknown means the status is
// left untouched.
type UpdateConsignmentCommand struct { //nolint:recvcheck //using for validation
	actor               accesspolicy.Actor
	consignmentID       kernel.UUID
	target              consignment.Status
	note                string
	point               *kernel.GeoPoint
	deliveredAt         *time.Time
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateConsignmentCommand creates a command to update a consignment.
// All change fields are optional but at least one must be set.
func NewUpdateConsignmentCommand(
	actor accesspolicy.Actor,
	consignmentID kernel.UUID,
	target consignment.Status,
	note string,
	point *kernel.GeoPoint,
	deliveredAt *time.Time,
	estimatedDeliveryAt *time.Time,
) (UpdateConsignmentCommand, error) {
	cmd := UpdateConsignmentCommand{
		target:              target,
		note:                note,
		deliveredAt:         deliveredAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsignmentID(consignmentID),
		cmd.setPoint(point),
		cmd.validateChanges(),
	); err != nil {
		return UpdateConsignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsignmentCommandIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (c UpdateConsignmentCommand) Actor() accesspolicy.Actor {
	return c.actor
}

// ConsignmentID returns the consignment being updated.
func (c UpdateConsignmentCommand) ConsignmentID() kernel.UUID {
	return c.consignmentID
}

// Target returns the requested status, StatusUnknown when unchanged.
func (c UpdateConsignmentCommand) Target() consignment.Status {
	return c.target
}

// Note returns the optional note, empty when none.
func (c UpdateConsignmentCommand) Note() string {
	return c.note
}

// Point returns the optional coordinates attached to the change.
func (c UpdateConsignmentCommand) Point() *kernel.GeoPoint {
	return c.point
}

// DeliveredAt returns the optional actual delivery date.
func (c UpdateConsignmentCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// EstimatedDeliveryAt returns the optional delivery estimate.
func (c UpdateConsignmentCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

// Changes reports which consignment fields this command writes,
// for the access policy's per-field driver restriction.
func (c UpdateConsignmentCommand) Changes() accesspolicy.ConsignmentChanges {
	return accesspolicy.ConsignmentChanges{
		Status:            c.target != consignment.StatusUnknown,
		DeliveredAt:       c.deliveredAt != nil,
		Notes:             c.note != "",
		EstimatedDelivery: c.estimatedDeliveryAt != nil,
	}
}

func (c *UpdateConsignmentCommand) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateConsignmentCommand) setConsignmentID(consignmentID kernel.UUID) error {
	if err := consignmentID.Validate(); err != nil {
		return err
	}

	c.consignmentID = consignmentID
	return nil
}

func (c *UpdateConsignmentCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *UpdateConsignmentCommand) validateChanges() error {
	if c.target == consignment.StatusUnknown &&
		c.note == "" && c.deliveredAt == nil && c.estimatedDeliveryAt == nil {
		return errs.NewValueIsRequiredError("changes")
	}
	if c.target != consignment.StatusUnknown {
		return c.target.Validate()
	}

	return nil
}
